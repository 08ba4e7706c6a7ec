// internal/domain/homework/homework.go
package homework

import (
	"context"
	"fmt"
	"time"
)

// Status is the review state reported by the homework API.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// Verdicts maps every known status to the text shown in the chat.
var Verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Homework is a single record from the "homeworks" array.
type Homework struct {
	Name   string // homework_name
	Status Status
}

// Response is a validated API answer.
type Response struct {
	Homeworks   []Homework
	CurrentDate time.Time // zero when the server did not echo current_date
}

// Source fetches raw homework statuses changed since the given moment.
type Source interface {
	FetchStatuses(ctx context.Context, from time.Time) (any, error)
}

// Translate builds the chat message for a homework whose status changed.
func Translate(hw Homework) (string, error) {
	if hw.Name == "" {
		return "", fmt.Errorf("%w: homework_name is empty", ErrLookup)
	}
	verdict, ok := Verdicts[hw.Status]
	if !ok {
		return "", fmt.Errorf("%w: unknown status %q for homework %q", ErrLookup, hw.Status, hw.Name)
	}
	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", hw.Name, verdict), nil
}
