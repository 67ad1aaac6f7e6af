package book_room

import "context"

// ValidateRequest проверка формы без бронирования (живая валидация на клиенте)
type ValidateRequest struct {
	Form    Form
	Touched []string // Поля, которые пользователь посетил
	Dirty   []string // Поля, которые пользователь изменил
}

// ValidateResponse результат проверки формы
type ValidateResponse struct {
	Result             ValidationResult
	VisibleFieldErrors map[string][]string
	CanSubmit          bool
}

// Validate проверяет форму, не изменяя хранилище
func (uc *UseCase) Validate(_ context.Context, req *ValidateRequest) (*ValidateResponse, error) {
	state := NewFormState(req.Form)

	for _, field := range req.Touched {
		if err := state.Touch(field); err != nil {
			uc.logger.Warn("ValidateBooking: %v", err)
			return nil, err
		}
	}
	for _, field := range req.Dirty {
		if err := state.MarkDirty(field); err != nil {
			uc.logger.Warn("ValidateBooking: %v", err)
			return nil, err
		}
	}

	return &ValidateResponse{
		Result:             state.Result(),
		VisibleFieldErrors: state.VisibleFieldErrors(),
		CanSubmit:          state.CanSubmit(),
	}, nil
}
