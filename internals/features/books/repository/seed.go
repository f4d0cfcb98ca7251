package repository

import (
	model "bookstore_backend/internals/features/books/model"
)

// Seed returns the books present at startup.
func Seed() []model.Book {
	return []model.Book{
		{
			"id":            "1",
			"title":         "The Go Programming Language",
			"author":        "Alan A. A. Donovan",
			"publishedYear": 2015,
		},
		{
			"id":            "2",
			"title":         "Introducing Go",
			"author":        "Caleb Doxsey",
			"publishedYear": 2016,
		},
		{
			"id":            "3",
			"title":         "Concurrency in Go",
			"author":        "Katherine Cox-Buday",
			"publishedYear": 2017,
		},
	}
}
