package route

import (
	"github.com/gofiber/fiber/v2"

	controller "bookstore_backend/internals/features/books/controller"
	repository "bookstore_backend/internals/features/books/repository"
)

// BookRoutes mounts the /books CRUD surface.
func BookRoutes(app *fiber.App, store *repository.Store) {
	h := controller.NewBooksController(store)

	books := app.Group("/books")
	books.Get("/", h.List)
	books.Post("/", h.Create)
	books.Get("/:id", h.GetByID)
	books.Put("/:id", h.Update)
	books.Delete("/:id", h.Delete)
}
