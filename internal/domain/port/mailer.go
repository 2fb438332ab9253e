package port

import (
	"context"

	"chase-cover/internal/domain/entity"
)

// Mailer интерфейс отправки письма в цех
type Mailer interface {
	// Send доставляет письмо с вложениями
	Send(ctx context.Context, mail *entity.Mail) error
}
