// Package sketch рисует вид сверху на крышку короба дымохода.
//
// Эскиз строится в дюймах в системе координат панели: X слева направо,
// Y от задней стороны (кричет) к передней, начало в левом заднем углу
// основы. На изображении задняя сторона внизу, как на бумажных эскизах
// бригады.
//
// На эскизе:
//   - основа (чёрный), фланец (синий), кромки kickout/trim (чёрный и серый);
//   - отверстия (красный) с подписью "H1: D=24.0" и замерами "L=6.0";
//   - размеры ширины, длины и фланца, заголовок с именем проекта.
//
// Основа заливается светлым оттенком выбранного цвета металла.
//
// RasterRenderer выдаёт JPEG для цеха, SVGRenderer лёгкое превью для
// веб-формы. Оба используют общую раскладку layout.
package sketch
