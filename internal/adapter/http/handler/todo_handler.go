package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"todoweb/internal/adapter/http/middleware"
	"todoweb/internal/adapter/http/validation"
	"todoweb/internal/adapter/telemetry"
	"todoweb/internal/core/domain"
	"todoweb/internal/core/model/request"
	"todoweb/internal/core/port"
)

const listURL = "/todos/"

type TodoHandler struct {
	svc     port.TodoService
	metrics *telemetry.AppMetrics
}

func NewTodoHandler(svc port.TodoService, metrics *telemetry.AppMetrics) *TodoHandler {
	return &TodoHandler{
		svc:     svc,
		metrics: metrics,
	}
}

// Home redirects the root path to the listing.
func (h *TodoHandler) Home(c *gin.Context) {
	c.Redirect(http.StatusFound, listURL)
}

func (h *TodoHandler) List(c *gin.Context) {
	status := domain.ParseStatusFilter(c.Query("status"))
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))

	if err != nil {
		page = 1
	}

	result, err := h.svc.ListPage(c.Request.Context(), status, page)

	if err != nil {
		h.serverError(c, err)
		return
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Page":      &result,
		"CSRFToken": middleware.CSRFToken(c),
	})
}

func (h *TodoHandler) NewForm(c *gin.Context) {
	h.renderForm(c, request.TodoForm{}, nil, "/todos/new/", false)
}

func (h *TodoHandler) Create(c *gin.Context) {
	var form request.TodoForm

	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Bad Request")
		return
	}

	todo, fieldErrors := h.validate(form)

	if len(fieldErrors) > 0 {
		h.renderForm(c, form, fieldErrors, "/todos/new/", false)
		return
	}

	if _, err := h.svc.Create(c.Request.Context(), todo); err != nil {
		h.serverError(c, err)
		return
	}

	h.metrics.RecordTodoOperation("create")
	c.Redirect(http.StatusSeeOther, listURL)
}

func (h *TodoHandler) EditForm(c *gin.Context) {
	id, ok := h.todoID(c)

	if !ok {
		return
	}

	todo, err := h.svc.Get(c.Request.Context(), id)

	if err != nil {
		h.lookupError(c, err)
		return
	}

	h.renderForm(c, request.FromDomain(todo), nil, editURL(id), true)
}

func (h *TodoHandler) Update(c *gin.Context) {
	id, ok := h.todoID(c)

	if !ok {
		return
	}

	var form request.TodoForm

	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Bad Request")
		return
	}

	todo, fieldErrors := h.validate(form)

	if len(fieldErrors) > 0 {
		h.renderForm(c, form, fieldErrors, editURL(id), true)
		return
	}

	todo.ID = id

	if _, err := h.svc.Update(c.Request.Context(), todo); err != nil {
		h.lookupError(c, err)
		return
	}

	h.metrics.RecordTodoOperation("update")
	c.Redirect(http.StatusSeeOther, listURL)
}

func (h *TodoHandler) ConfirmDelete(c *gin.Context) {
	id, ok := h.todoID(c)

	if !ok {
		return
	}

	todo, err := h.svc.Get(c.Request.Context(), id)

	if err != nil {
		h.lookupError(c, err)
		return
	}

	c.HTML(http.StatusOK, "confirm_delete.html", gin.H{
		"Todo":      &todo,
		"CSRFToken": middleware.CSRFToken(c),
	})
}

func (h *TodoHandler) Delete(c *gin.Context) {
	id, ok := h.todoID(c)

	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.lookupError(c, err)
		return
	}

	h.metrics.RecordTodoOperation("delete")
	c.Redirect(http.StatusSeeOther, listURL)
}

// ToggleComplete flips the completed flag. Only POST reaches here; the
// GET variant of the route is wired to ToggleCompleteRedirect.
func (h *TodoHandler) ToggleComplete(c *gin.Context) {
	id, ok := h.todoID(c)

	if !ok {
		return
	}

	if _, err := h.svc.ToggleComplete(c.Request.Context(), id); err != nil {
		h.lookupError(c, err)
		return
	}

	h.metrics.RecordTodoOperation("toggle")

	url := listURL

	if status, ok := domain.LookupStatusFilter(c.Query("status")); ok {
		url = listURL + "?status=" + status.String()
	}

	c.Redirect(http.StatusSeeOther, url)
}

// ToggleCompleteRedirect keeps GET on the toggle route mutation-free.
func (h *TodoHandler) ToggleCompleteRedirect(c *gin.Context) {
	c.Redirect(http.StatusFound, listURL)
}

func (h *TodoHandler) validate(form request.TodoForm) (domain.Todo, map[string]string) {
	todo, fieldErrors := form.ToDomain()

	if len(fieldErrors) > 0 {
		return todo, fieldErrors
	}

	if err := validation.Validator.Struct(todo); err != nil {
		return todo, validation.FormatValidationErrors(err)
	}

	return todo, nil
}

func (h *TodoHandler) renderForm(c *gin.Context, form request.TodoForm, fieldErrors map[string]string, action string, editing bool) {
	title := "New to-do"

	if editing {
		title = "Edit to-do"
	}

	c.HTML(http.StatusOK, "form.html", gin.H{
		"PageTitle": title,
		"Form":      form,
		"Errors":    fieldErrors,
		"Action":    action,
		"CSRFToken": middleware.CSRFToken(c),
	})
}

func (h *TodoHandler) todoID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)

	if err != nil || id < 1 {
		h.notFound(c)
		return 0, false
	}

	return id, true
}

func (h *TodoHandler) lookupError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		h.notFound(c)
		return
	}

	h.serverError(c, err)
}

func (h *TodoHandler) notFound(c *gin.Context) {
	c.String(http.StatusNotFound, "Not Found")
}

func (h *TodoHandler) serverError(c *gin.Context, err error) {
	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	c.String(http.StatusInternalServerError, "Internal Server Error")
}

func editURL(id int64) string {
	return fmt.Sprintf("/todos/%d/edit/", id)
}
