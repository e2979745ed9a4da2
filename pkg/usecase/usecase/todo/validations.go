package usecase

import (
	"todo-go-backend/pkg/entity/model"
	"todo-go-backend/pkg/util/datetime"
)

// Validation messages returned to clients as plain text.
const (
	MsgInvalidPriority = "Invalid Todo Priority"
	MsgInvalidStatus   = "Invalid Todo Status"
	MsgInvalidCategory = "Invalid Todo Category"
	MsgInvalidDueDate  = "Invalid Due Date"
	MsgInvalidID       = "Invalid Todo Id"
	MsgInvalidProperty = "Invalid Todo Property"
	MsgInvalidBody     = "Invalid Request Body"
)

// QueryFilter holds the raw enum filters of a listing request.
// A nil field was not supplied; Invalid marks a filter given more than once.
type QueryFilter struct {
	Priority *string
	Status   *string
	Category *string
	Invalid  map[string]bool
}

// TodoProperties holds the raw enum and due date properties of a request
// body. A nil field was not supplied; Invalid marks a field that was
// supplied with a non-string JSON value.
type TodoProperties struct {
	Priority *string
	Status   *string
	Category *string
	DueDate  *string
	Invalid  map[string]bool
}

// ValidateQueryFilter accepts each supplied filter in its canonical
// upper-case or all-lower-case spelling. Fields are checked in the order
// priority, status, category and the first failure is returned.
func ValidateQueryFilter(f QueryFilter) error {
	if f.Invalid["priority"] || (f.Priority != nil && !matchesAny(*f.Priority, priorityTokens())) {
		return model.NewValidationError(MsgInvalidPriority)
	}
	if f.Invalid["status"] || (f.Status != nil && !matchesAny(*f.Status, statusTokens())) {
		return model.NewValidationError(MsgInvalidStatus)
	}
	if f.Invalid["category"] || (f.Category != nil && !matchesAny(*f.Category, categoryTokens())) {
		return model.NewValidationError(MsgInvalidCategory)
	}
	return nil
}

// ValidateTodoProperties accepts only canonical upper-case enum tokens and a
// parseable due date. It returns the due date normalized to yyyy-MM-dd, or
// nil when no due date was supplied.
func ValidateTodoProperties(p TodoProperties) (*string, error) {
	if p.Invalid["priority"] || (p.Priority != nil && !model.Priority(*p.Priority).IsValid()) {
		return nil, model.NewValidationError(MsgInvalidPriority)
	}
	if p.Invalid["status"] || (p.Status != nil && !model.Status(*p.Status).IsValid()) {
		return nil, model.NewValidationError(MsgInvalidStatus)
	}
	if p.Invalid["category"] || (p.Category != nil && !model.Category(*p.Category).IsValid()) {
		return nil, model.NewValidationError(MsgInvalidCategory)
	}
	if p.Invalid["dueDate"] {
		return nil, model.NewValidationError(MsgInvalidDueDate)
	}
	if p.DueDate == nil {
		return nil, nil
	}
	d, err := datetime.NormalizeDueDate(*p.DueDate)
	if err != nil {
		return nil, model.NewValidationError(MsgInvalidDueDate)
	}
	return &d, nil
}

// ValidateCreateTodoInput checks that a new todo carries every enum field
// and returns it with the due date normalized to yyyy-MM-dd.
func ValidateCreateTodoInput(input model.CreateTodoInput) (model.CreateTodoInput, error) {
	if !input.Priority.IsValid() {
		return input, model.NewValidationError(MsgInvalidPriority)
	}
	if !input.Status.IsValid() {
		return input, model.NewValidationError(MsgInvalidStatus)
	}
	if !input.Category.IsValid() {
		return input, model.NewValidationError(MsgInvalidCategory)
	}
	if input.DueDate != nil {
		d, err := datetime.NormalizeDueDate(*input.DueDate)
		if err != nil {
			return input, model.NewValidationError(MsgInvalidDueDate)
		}
		input.DueDate = &d
	}
	return input, nil
}

// ValidateUpdateTodoInput checks the single column change of an update and
// returns it with a due date value normalized to yyyy-MM-dd.
func ValidateUpdateTodoInput(input model.UpdateTodoInput) (model.UpdateTodoInput, error) {
	switch input.Field {
	case model.TodoFieldTodo:
	case model.TodoFieldPriority:
		if !model.Priority(input.Value).IsValid() {
			return input, model.NewValidationError(MsgInvalidPriority)
		}
	case model.TodoFieldStatus:
		if !model.Status(input.Value).IsValid() {
			return input, model.NewValidationError(MsgInvalidStatus)
		}
	case model.TodoFieldCategory:
		if !model.Category(input.Value).IsValid() {
			return input, model.NewValidationError(MsgInvalidCategory)
		}
	case model.TodoFieldDueDate:
		d, err := datetime.NormalizeDueDate(input.Value)
		if err != nil {
			return input, model.NewValidationError(MsgInvalidDueDate)
		}
		input.Value = d
	default:
		return input, model.NewValidationError(MsgInvalidProperty)
	}
	return input, nil
}

func matchesAny(v string, tokens []string) bool {
	for _, t := range tokens {
		if model.MatchesEnumToken(v, t) {
			return true
		}
	}
	return false
}

func priorityTokens() []string {
	out := make([]string, 0, len(model.Priorities))
	for _, p := range model.Priorities {
		out = append(out, string(p))
	}
	return out
}

func statusTokens() []string {
	out := make([]string, 0, len(model.Statuses))
	for _, s := range model.Statuses {
		out = append(out, string(s))
	}
	return out
}

func categoryTokens() []string {
	out := make([]string, 0, len(model.Categories))
	for _, c := range model.Categories {
		out = append(out, string(c))
	}
	return out
}
