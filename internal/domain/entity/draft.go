package entity

// DraftState состояние диалога в чате
type DraftState string

const (
	StateMainMenu             DraftState = "main_menu"             // В главном меню
	StateAwaitingMeasurements DraftState = "awaiting_measurements" // Ожидание замеров
	StateCollectingPhotos     DraftState = "collecting_photos"     // Замеры приняты, собираем фото
)

// Draft черновик заказа для одного чата
type Draft struct {
	ChatID    int64      // Telegram Chat ID
	State     DraftState // Текущее состояние диалога
	Order     *Order     // Последние принятые замеры
	Photos    []Photo    // Фото, присланные до /sketch
	PackageID string     // Последний собранный пакет
}

// NewDraft создаёт пустой черновик в главном меню
func NewDraft(chatID int64) *Draft {
	return &Draft{
		ChatID: chatID,
		State:  StateMainMenu,
	}
}

// SetState обновляет состояние диалога
func (d *Draft) SetState(state DraftState) {
	d.State = state
}

// Reset очищает замеры и фото, пакет остаётся доступным для /send
func (d *Draft) Reset() {
	d.Order = nil
	d.Photos = nil
	d.State = StateMainMenu
}
