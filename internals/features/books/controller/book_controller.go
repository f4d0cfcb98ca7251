package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	dto "bookstore_backend/internals/features/books/dto"
	model "bookstore_backend/internals/features/books/model"
	repository "bookstore_backend/internals/features/books/repository"
	helper "bookstore_backend/internals/helpers"
)

const (
	msgBookNotFound   = "Book not found"
	msgRequiredFields = "Title, author, and publishedYear are required"
	msgInvalidBody    = "Invalid request body"
)

type BooksController struct {
	Store    *repository.Store
	Validate *validator.Validate
}

func NewBooksController(store *repository.Store) *BooksController {
	return &BooksController{
		Store:    store,
		Validate: validator.New(),
	}
}

// ----------------------------------------------------------
// GET /books
// ----------------------------------------------------------
func (h *BooksController) List(c *fiber.Ctx) error {
	return helper.JsonOK(c, h.Store.List())
}

// ----------------------------------------------------------
// GET /books/:id
// ----------------------------------------------------------
func (h *BooksController) GetByID(c *fiber.Ctx) error {
	book, ok := h.Store.Get(c.Params("id"))
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, msgBookNotFound)
	}
	return helper.JsonOK(c, book)
}

// ----------------------------------------------------------
// POST /books
// ----------------------------------------------------------
func (h *BooksController) Create(c *fiber.Ctx) error {
	var req dto.BookCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, msgInvalidBody)
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, msgRequiredFields)
	}

	// Second decode keeps any extra client fields verbatim.
	var fields model.Book
	if err := c.BodyParser(&fields); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, msgInvalidBody)
	}
	delete(fields, "id") // ids are assigned by the store

	return helper.JsonCreated(c, h.Store.Create(fields))
}

// ----------------------------------------------------------
// PUT /books/:id
// ----------------------------------------------------------
func (h *BooksController) Update(c *fiber.Ctx) error {
	var fields model.Book
	if err := c.BodyParser(&fields); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	book, ok := h.Store.Update(c.Params("id"), fields)
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, msgBookNotFound)
	}
	return helper.JsonOK(c, book)
}

// ----------------------------------------------------------
// DELETE /books/:id
// ----------------------------------------------------------
func (h *BooksController) Delete(c *fiber.Ctx) error {
	if !h.Store.Delete(c.Params("id")) {
		return helper.JsonError(c, fiber.StatusNotFound, msgBookNotFound)
	}
	return helper.JsonNoContent(c)
}
