package router_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"todo-go-backend/pkg/adapter/controller"
	"todo-go-backend/pkg/entity/model"
	"todo-go-backend/pkg/infrastructure/router"
	"todo-go-backend/pkg/usecase/repository/mocks"
	usecase "todo-go-backend/pkg/usecase/usecase/todo"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func setup(t *testing.T) (*echo.Echo, *mocks.MockTodo) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTodo(ctrl)

	c := controller.Controller{
		Todo: controller.NewTodoController(usecase.NewTodoUseCase(repo)),
	}
	return router.New(c, zap.NewNop(), router.Options{}), repo
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func strPtr(s string) *string { return &s }

func TestRouter_ListTodos(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		arrange func(repo *mocks.MockTodo)
		status  int
		body    string
	}{
		{
			name:   "It should accept upper-case filters",
			target: "/todos?priority=HIGH&status=IN%20PROGRESS",
			arrange: func(repo *mocks.MockTodo) {
				repo.EXPECT().List(gomock.Any(), model.TodoWhereInput{Priority: "HIGH", Status: "IN PROGRESS"}).
					Return([]*model.Todo{{ID: 1, Todo: "Buy milk", Priority: model.PriorityHigh}}, nil)
			},
			status: http.StatusOK,
			body:   `[{"id":1,"todo":"Buy milk","priority":"HIGH","status":"","category":"","dueDate":null}]`,
		},
		{
			name:   "It should accept lower-case filters",
			target: "/todos?category=home",
			arrange: func(repo *mocks.MockTodo) {
				repo.EXPECT().List(gomock.Any(), model.TodoWhereInput{Category: "HOME"}).Return(nil, nil)
			},
			status: http.StatusOK,
			body:   `[]`,
		},
		{
			name:    "It should reject a mixed-case priority",
			target:  "/todos?priority=High",
			arrange: func(repo *mocks.MockTodo) {},
			status:  http.StatusBadRequest,
			body:    usecase.MsgInvalidPriority,
		},
		{
			name:    "It should reject a repeated priority even when one value is valid",
			target:  "/todos?priority=HIGH&priority=low",
			arrange: func(repo *mocks.MockTodo) {},
			status:  http.StatusBadRequest,
			body:    usecase.MsgInvalidPriority,
		},
		{
			name:    "It should reject a repeated category",
			target:  "/todos?status=DONE&category=HOME&category=HOME",
			arrange: func(repo *mocks.MockTodo) {},
			status:  http.StatusBadRequest,
			body:    usecase.MsgInvalidCategory,
		},
		{
			name:    "It should reject an empty status",
			target:  "/todos?status=",
			arrange: func(repo *mocks.MockTodo) {},
			status:  http.StatusBadRequest,
			body:    usecase.MsgInvalidStatus,
		},
		{
			name:   "It should answer store failures with 500",
			target: "/todos/",
			arrange: func(repo *mocks.MockTodo) {
				repo.EXPECT().List(gomock.Any(), gomock.Any()).
					Return(nil, model.NewDBError(errors.New("no such table: todo")))
			},
			status: http.StatusInternalServerError,
			body:   "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, repo := setup(t)
			tt.arrange(repo)

			rec := serve(e, http.MethodGet, tt.target, "")

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.body, strings.TrimSpace(rec.Body.String()))
		})
	}
}

func TestRouter_GetTodo(t *testing.T) {
	t.Run("It should answer a missing todo with an empty body", func(t *testing.T) {
		e, repo := setup(t)
		repo.EXPECT().Get(gomock.Any(), int64(404)).Return(nil, nil)

		rec := serve(e, http.MethodGet, "/todos/404", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("It should not query the store for a non-numeric id", func(t *testing.T) {
		e, _ := setup(t)

		rec := serve(e, http.MethodGet, "/todos/abc", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("It should render the todo", func(t *testing.T) {
		e, repo := setup(t)
		repo.EXPECT().Get(gomock.Any(), int64(3)).Return(&model.Todo{
			ID: 3, Todo: "Pay bills", Priority: model.PriorityLow, Status: model.StatusDone,
			Category: model.CategoryWork, DueDate: strPtr("2021-02-22"),
		}, nil)

		rec := serve(e, http.MethodGet, "/todos/3", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t,
			`{"id":3,"todo":"Pay bills","priority":"LOW","status":"DONE","category":"WORK","dueDate":"2021-02-22"}`,
			rec.Body.String())
	})
}

func TestRouter_Agenda(t *testing.T) {
	t.Run("It should pass the normalized date", func(t *testing.T) {
		e, repo := setup(t)
		repo.EXPECT().ListByDueDate(gomock.Any(), "2021-02-22").Return(nil, nil)

		rec := serve(e, http.MethodGet, "/agenda?date=2021-2-22", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
	})

	for _, target := range []string{"/agenda", "/agenda?date=", "/agenda?date=2021-02-30"} {
		t.Run("It should reject "+target, func(t *testing.T) {
			e, _ := setup(t)

			rec := serve(e, http.MethodGet, target, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, usecase.MsgInvalidDueDate, rec.Body.String())
		})
	}
}

func TestRouter_CreateTodo(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		arrange func(repo *mocks.MockTodo)
		status  int
		want    string
	}{
		{
			name: "It should add a todo",
			body: `{"id":6,"todo":"Learn Go","priority":"HIGH","status":"TO DO","category":"LEARNING","dueDate":"2021-1-12"}`,
			arrange: func(repo *mocks.MockTodo) {
				repo.EXPECT().Create(gomock.Any(), model.CreateTodoInput{
					ID: 6, Todo: "Learn Go", Priority: model.PriorityHigh, Status: model.StatusToDo,
					Category: model.CategoryLearning, DueDate: strPtr("2021-01-12"),
				}).Return(nil)
			},
			status: http.StatusOK,
			want:   "Todo Successfully Added",
		},
		{
			name: "It should answer a duplicate id with 200",
			body: `{"id":6,"todo":"Learn Go","priority":"HIGH","status":"TO DO","category":"LEARNING"}`,
			arrange: func(repo *mocks.MockTodo) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(model.ErrTodoIDExists)
			},
			status: http.StatusOK,
			want:   "todoId already exists",
		},
		{
			name:    "It should reject a lower-case status",
			body:    `{"id":7,"todo":"x","priority":"HIGH","status":"done","category":"HOME"}`,
			arrange: func(repo *mocks.MockTodo) {},
			status:  http.StatusBadRequest,
			want:    usecase.MsgInvalidStatus,
		},
		{
			name:    "It should reject an invalid due date",
			body:    `{"id":7,"todo":"x","priority":"HIGH","status":"DONE","category":"HOME","dueDate":"2021-13-01"}`,
			arrange: func(repo *mocks.MockTodo) {},
			status:  http.StatusBadRequest,
			want:    usecase.MsgInvalidDueDate,
		},
		{
			name:    "It should reject a missing id",
			body:    `{"todo":"x","priority":"HIGH","status":"DONE","category":"HOME"}`,
			arrange: func(repo *mocks.MockTodo) {},
			status:  http.StatusBadRequest,
			want:    usecase.MsgInvalidID,
		},
		{
			name:    "It should reject a body that is not an object",
			body:    `[1,2]`,
			arrange: func(repo *mocks.MockTodo) {},
			status:  http.StatusBadRequest,
			want:    usecase.MsgInvalidBody,
		},
		{
			name: "It should answer store failures with 500",
			body: `{"id":8,"todo":"x","priority":"LOW","status":"DONE","category":"HOME"}`,
			arrange: func(repo *mocks.MockTodo) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(model.NewDBError(errors.New("disk full")))
			},
			status: http.StatusInternalServerError,
			want:   "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, repo := setup(t)
			tt.arrange(repo)

			rec := serve(e, http.MethodPost, "/todos", tt.body)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.want, rec.Body.String())
		})
	}
}

func TestRouter_UpdateTodo(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		body    string
		arrange func(repo *mocks.MockTodo)
		status  int
		want    string
	}{
		{
			name:   "It should apply only the first property",
			target: "/todos/1",
			body:   `{"priority":"HIGH","status":"DONE"}`,
			arrange: func(repo *mocks.MockTodo) {
				repo.EXPECT().Update(gomock.Any(), model.UpdateTodoInput{
					ID: 1, Field: model.TodoFieldPriority, Value: "HIGH",
				}).Return(nil)
			},
			status: http.StatusOK,
			want:   "Priority Updated",
		},
		{
			name:   "It should follow the written key order",
			target: "/todos/1",
			body:   `{"status":"DONE","priority":"HIGH"}`,
			arrange: func(repo *mocks.MockTodo) {
				repo.EXPECT().Update(gomock.Any(), model.UpdateTodoInput{
					ID: 1, Field: model.TodoFieldStatus, Value: "DONE",
				}).Return(nil)
			},
			status: http.StatusOK,
			want:   "Status Updated",
		},
		{
			name:   "It should skip unknown keys",
			target: "/todos/2",
			body:   `{"id":5,"dueDate":"2021-3-4"}`,
			arrange: func(repo *mocks.MockTodo) {
				repo.EXPECT().Update(gomock.Any(), model.UpdateTodoInput{
					ID: 2, Field: model.TodoFieldDueDate, Value: "2021-03-04",
				}).Return(nil)
			},
			status: http.StatusOK,
			want:   "Due Date Updated",
		},
		{
			name:   "It should store text with quotes as written",
			target: "/todos/2",
			body:   `{"todo":"It's raining"}`,
			arrange: func(repo *mocks.MockTodo) {
				repo.EXPECT().Update(gomock.Any(), model.UpdateTodoInput{
					ID: 2, Field: model.TodoFieldTodo, Value: "It's raining",
				}).Return(nil)
			},
			status: http.StatusOK,
			want:   "Todo Updated",
		},
		{
			name:    "It should reject a body without a known property",
			target:  "/todos/2",
			body:    `{"title":"x"}`,
			arrange: func(repo *mocks.MockTodo) {},
			status:  http.StatusBadRequest,
			want:    usecase.MsgInvalidProperty,
		},
		{
			name:    "It should validate every enum before applying the first",
			target:  "/todos/2",
			body:    `{"todo":"x","category":"Garden"}`,
			arrange: func(repo *mocks.MockTodo) {},
			status:  http.StatusBadRequest,
			want:    usecase.MsgInvalidCategory,
		},
		{
			name:    "It should reject a non-string value",
			target:  "/todos/2",
			body:    `{"todo":42}`,
			arrange: func(repo *mocks.MockTodo) {},
			status:  http.StatusBadRequest,
			want:    usecase.MsgInvalidProperty,
		},
		{
			name:    "It should not touch the store for a non-numeric id",
			target:  "/todos/abc",
			body:    `{"status":"DONE"}`,
			arrange: func(repo *mocks.MockTodo) {},
			status:  http.StatusOK,
			want:    "Status Updated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, repo := setup(t)
			tt.arrange(repo)

			rec := serve(e, http.MethodPut, tt.target, tt.body)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.want, rec.Body.String())
		})
	}
}

func TestRouter_DeleteTodo(t *testing.T) {
	e, repo := setup(t)
	repo.EXPECT().Delete(gomock.Any(), int64(404)).Return(nil)

	rec := serve(e, http.MethodDelete, "/todos/404", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Todo Deleted", rec.Body.String())
}

func TestRouter_BodyLimit(t *testing.T) {
	big := `{"id":1,"todo":"` + strings.Repeat("a", 1<<20) + `"}`

	tests := []struct {
		name string
		body func() io.Reader
	}{
		{
			name: "It should refuse a body whose declared length is too large",
			body: func() io.Reader { return strings.NewReader(big) },
		},
		{
			name: "It should refuse a streamed body once it grows too large",
			body: func() io.Reader { return io.MultiReader(strings.NewReader(big)) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := setup(t)

			req := httptest.NewRequest(http.MethodPost, "/todos", tt.body())
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
			assert.Equal(t, http.StatusText(http.StatusRequestEntityTooLarge), rec.Body.String())
		})
	}
}

func TestRouter_HealthCheck(t *testing.T) {
	e, _ := setup(t)

	rec := serve(e, http.MethodGet, router.HealthCheckPath, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
