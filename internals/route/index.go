package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"

	bookRoutes "bookstore_backend/internals/features/books/route"
	repository "bookstore_backend/internals/features/books/repository"
)

func SetupRoutes(app *fiber.App, store *repository.Store) {
	BaseRoutes(app)

	log.Println("[INFO] Mounting Book routes...")
	bookRoutes.BookRoutes(app, store)
}
