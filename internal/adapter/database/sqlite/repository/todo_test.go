package repository_test

import (
	"context"
	"testing"
	"time"

	. "todoweb/pkg/test"

	"todoweb/internal/adapter/database/sqlite/repository"
	"todoweb/internal/core/domain"
	"todoweb/internal/core/port"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type TodoRepositoryTestSuite struct {
	suite.Suite
	TodoRepo port.TodoRepository
}

func (s *TodoRepositoryTestSuite) SetupTest() {
	db := InitTestDB()

	s.TodoRepo = repository.NewTodoRepository(db)
}

func TestTodoRepositoryTestSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(TodoRepositoryTestSuite))
}

func date(offsetDays int) *time.Time {
	y, m, d := time.Now().Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.Local).AddDate(0, 0, offsetDays)

	return &day
}

func (s *TodoRepositoryTestSuite) createTodo(title string, due *time.Time, completed bool, createdAt time.Time) domain.Todo {
	todo, err := s.TodoRepo.Create(context.Background(), domain.Todo{
		Title:     title,
		DueDate:   due,
		Completed: completed,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	})

	Expect(err).To(BeNil())

	return todo
}

func titles(todos []domain.Todo) []string {
	names := make([]string, 0, len(todos))

	for _, todo := range todos {
		names = append(names, todo.Title)
	}

	return names
}

func (s *TodoRepositoryTestSuite) TestRepository_List_Empty() {
	todos, err := s.TodoRepo.List(context.Background(), domain.StatusAll, 10, 0)

	Expect(err).To(BeNil())
	Expect(todos).To(BeEmpty())
}

func (s *TodoRepositoryTestSuite) TestRepository_List_Ordering() {
	base := time.Now().Add(-time.Hour)

	s.createTodo("A", date(1), false, base)
	s.createTodo("B", date(0), false, base.Add(time.Minute))
	s.createTodo("C", nil, false, base.Add(2*time.Minute))
	s.createTodo("D", date(0), true, base.Add(3*time.Minute))
	s.createTodo("E", nil, true, base.Add(4*time.Minute))

	todos, err := s.TodoRepo.List(context.Background(), domain.StatusAll, 10, 0)

	Expect(err).To(BeNil())
	Expect(titles(todos)).To(Equal([]string{"C", "B", "A", "E", "D"}))
}

func (s *TodoRepositoryTestSuite) TestRepository_List_CreatedDescTieBreak() {
	base := time.Now().Add(-time.Hour)

	s.createTodo("older", nil, false, base)
	s.createTodo("newer", nil, false, base.Add(time.Minute))

	todos, err := s.TodoRepo.List(context.Background(), domain.StatusOpen, 10, 0)

	Expect(err).To(BeNil())
	Expect(titles(todos)).To(Equal([]string{"newer", "older"}))
}

func (s *TodoRepositoryTestSuite) TestRepository_List_StatusFilters() {
	base := time.Now().Add(-time.Hour)

	s.createTodo("open", nil, false, base)
	s.createTodo("done", nil, true, base.Add(time.Minute))

	open, err := s.TodoRepo.List(context.Background(), domain.StatusOpen, 10, 0)
	Expect(err).To(BeNil())
	Expect(titles(open)).To(Equal([]string{"open"}))

	completed, err := s.TodoRepo.List(context.Background(), domain.StatusCompleted, 10, 0)
	Expect(err).To(BeNil())
	Expect(titles(completed)).To(Equal([]string{"done"}))

	all, err := s.TodoRepo.List(context.Background(), domain.StatusAll, 10, 0)
	Expect(err).To(BeNil())
	Expect(all).To(HaveLen(2))
}

func (s *TodoRepositoryTestSuite) TestRepository_Count_PerStatus() {
	base := time.Now().Add(-time.Hour)

	s.createTodo("one", nil, false, base)
	s.createTodo("two", nil, false, base)
	s.createTodo("three", nil, true, base)

	open, err := s.TodoRepo.Count(context.Background(), domain.StatusOpen)
	Expect(err).To(BeNil())
	Expect(open).To(Equal(int64(2)))

	completed, err := s.TodoRepo.Count(context.Background(), domain.StatusCompleted)
	Expect(err).To(BeNil())
	Expect(completed).To(Equal(int64(1)))

	all, err := s.TodoRepo.Count(context.Background(), domain.StatusAll)
	Expect(err).To(BeNil())
	Expect(all).To(Equal(int64(3)))
}

func (s *TodoRepositoryTestSuite) TestRepository_List_LimitOffset() {
	base := time.Now().Add(-time.Hour)

	for i := 0; i < 15; i++ {
		s.createTodo("task", nil, false, base.Add(time.Duration(i)*time.Minute))
	}

	first, err := s.TodoRepo.List(context.Background(), domain.StatusOpen, 10, 0)
	Expect(err).To(BeNil())
	Expect(first).To(HaveLen(10))

	second, err := s.TodoRepo.List(context.Background(), domain.StatusOpen, 10, 10)
	Expect(err).To(BeNil())
	Expect(second).To(HaveLen(5))
}

func (s *TodoRepositoryTestSuite) TestRepository_Create_RoundTrip() {
	due := date(3)
	todo := s.createTodo("Pay bills", due, false, time.Now())

	Expect(todo.ID).To(BeNumerically(">", 0))
	Expect(todo.Title).To(Equal("Pay bills"))
	Expect(todo.Completed).To(BeFalse())
	Expect(todo.DueDate).ToNot(BeNil())
	Expect(todo.DueDate.Format("2006-01-02")).To(Equal(due.Format("2006-01-02")))
}

func (s *TodoRepositoryTestSuite) TestRepository_GetByID_NotFound() {
	_, err := s.TodoRepo.GetByID(context.Background(), 9999)

	Expect(err).To(MatchError(domain.ErrNotFound))
}

func (s *TodoRepositoryTestSuite) TestRepository_Update_Success() {
	todo := s.createTodo("before", nil, false, time.Now().Add(-time.Hour))

	todo.Title = "after"
	todo.Description = "some details"
	todo.DueDate = date(2)
	todo.UpdatedAt = time.Now()

	updated, err := s.TodoRepo.Update(context.Background(), todo)

	Expect(err).To(BeNil())
	Expect(updated.Title).To(Equal("after"))
	Expect(updated.Description).To(Equal("some details"))
	Expect(updated.DueDate).ToNot(BeNil())
	Expect(updated.CreatedAt.Unix()).To(Equal(todo.CreatedAt.Unix()))
}

func (s *TodoRepositoryTestSuite) TestRepository_Update_NotFound() {
	_, err := s.TodoRepo.Update(context.Background(), domain.Todo{ID: 424242, Title: "ghost", UpdatedAt: time.Now()})

	Expect(err).To(MatchError(domain.ErrNotFound))
}

func (s *TodoRepositoryTestSuite) TestRepository_ToggleComplete_FlipsOnlyCompleted() {
	due := date(5)
	todo := s.createTodo("toggle me", due, false, time.Now().Add(-time.Hour))

	toggled, err := s.TodoRepo.ToggleComplete(context.Background(), todo.ID)

	Expect(err).To(BeNil())
	Expect(toggled.Completed).To(BeTrue())
	Expect(toggled.Title).To(Equal("toggle me"))
	Expect(toggled.DueDate.Format("2006-01-02")).To(Equal(due.Format("2006-01-02")))
	Expect(toggled.CreatedAt.Unix()).To(Equal(todo.CreatedAt.Unix()))
	Expect(toggled.UpdatedAt.After(todo.UpdatedAt)).To(BeTrue())

	back, err := s.TodoRepo.ToggleComplete(context.Background(), todo.ID)

	Expect(err).To(BeNil())
	Expect(back.Completed).To(BeFalse())
}

func (s *TodoRepositoryTestSuite) TestRepository_ToggleComplete_NotFound() {
	_, err := s.TodoRepo.ToggleComplete(context.Background(), 9999)

	Expect(err).To(MatchError(domain.ErrNotFound))
}

func (s *TodoRepositoryTestSuite) TestRepository_Delete_Success() {
	todo := s.createTodo("gone", nil, false, time.Now())

	err := s.TodoRepo.Delete(context.Background(), todo.ID)
	assert.NoError(s.T(), err)

	_, err = s.TodoRepo.GetByID(context.Background(), todo.ID)
	Expect(err).To(MatchError(domain.ErrNotFound))
}

func (s *TodoRepositoryTestSuite) TestRepository_Delete_NotFound() {
	err := s.TodoRepo.Delete(context.Background(), 9999)

	Expect(err).To(MatchError(domain.ErrNotFound))
}
