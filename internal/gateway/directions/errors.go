package directions

import "errors"

// ErrUnavailable покрывает любой отказ провайдера: сетевую ошибку, не-2xx
// ответ и ответ без маршрута. Вызывающие сервисы деградируют одинаково.
var ErrUnavailable = errors.New("directions provider unavailable")
