package book_room

import "fmt"

// FormState состояние формы с отметками touched/dirty.
// Ошибки полей показываются только после взаимодействия с полем,
// а возможность отправки зависит только от валидности.
type FormState struct {
	values  Form
	touched map[string]bool
	dirty   map[string]bool
}

// NewFormState создает состояние формы с начальными значениями
func NewFormState(initial Form) *FormState {
	return &FormState{
		values:  initial,
		touched: make(map[string]bool),
		dirty:   make(map[string]bool),
	}
}

// Set изменяет значение поля и помечает его dirty
func (f *FormState) Set(field, value string) error {
	switch field {
	case FieldGuestName:
		f.values.GuestName = value
	case FieldCheckIn:
		f.values.CheckIn = value
	case FieldCheckOut:
		f.values.CheckOut = value
	default:
		return fmt.Errorf("%w: unknown field %q", ErrInvalidInput, field)
	}
	f.dirty[field] = true
	return nil
}

// Touch помечает поле как посещенное
func (f *FormState) Touch(field string) error {
	if !isKnownField(field) {
		return fmt.Errorf("%w: unknown field %q", ErrInvalidInput, field)
	}
	f.touched[field] = true
	return nil
}

// MarkDirty помечает поле измененным, не меняя значение
func (f *FormState) MarkDirty(field string) error {
	if !isKnownField(field) {
		return fmt.Errorf("%w: unknown field %q", ErrInvalidInput, field)
	}
	f.dirty[field] = true
	return nil
}

// TouchAll помечает все поля (например, при попытке отправки)
func (f *FormState) TouchAll() {
	for _, field := range []string{FieldGuestName, FieldCheckIn, FieldCheckOut} {
		f.touched[field] = true
	}
}

// Values текущие значения формы
func (f *FormState) Values() Form {
	return f.values
}

// Result полный результат валидации
func (f *FormState) Result() ValidationResult {
	return ValidateForm(f.values)
}

// VisibleFieldErrors ошибки только тех полей, которые touched или dirty
func (f *FormState) VisibleFieldErrors() map[string][]string {
	visible := make(map[string][]string)
	for field, codes := range f.Result().FieldErrors {
		if f.touched[field] || f.dirty[field] {
			visible[field] = codes
		}
	}
	return visible
}

// CanSubmit returns true if the form has no field-level or form-level errors
func (f *FormState) CanSubmit() bool {
	return f.Result().Valid()
}

func isKnownField(field string) bool {
	return field == FieldGuestName || field == FieldCheckIn || field == FieldCheckOut
}
