package entity

// PhotoCheck итог проверки качества фото с объекта.
type PhotoCheck struct {
	Name         string
	Width        int
	Height       int
	EdgeRatio    float64 // доля пикселей-границ, мера резкости
	Overexposed  float64 // доля пересвеченных пикселей
	Underexposed float64 // доля тёмных пикселей
	Issues       []string
}

// OK нет замечаний к фото.
func (c *PhotoCheck) OK() bool {
	return len(c.Issues) == 0
}
