package api

import (
	"context"

	"venue-backoffice/internal/models"
	"venue-backoffice/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// registerCRUD mounts list/get/create/update/delete for one table on r.
// validate may trim the payload in place and rejects it with a 400.
func registerCRUD[R models.Record, I models.Insertable[R], U models.Patch](
	r fiber.Router,
	repo *repository.BaseModel[R, I, U],
	entity string,
	validate func(*I) error,
) {
	r.Get("/", listHandler(repo))
	r.Get("/:id", getHandler(repo, entity))
	r.Post("/", createHandler(repo, validate))
	r.Put("/:id", updateHandler(repo, entity))
	r.Delete("/:id", deleteHandler(repo))
}

func listHandler[R models.Record, I models.Insertable[R], U models.Patch](repo *repository.BaseModel[R, I, U]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := repo.FindAll(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(rows)
	}
}

func getHandler[R models.Record, I models.Insertable[R], U models.Patch](repo *repository.BaseModel[R, I, U], entity string) fiber.Handler {
	return one(repo.FindByID, entity)
}

func createHandler[R models.Record, I models.Insertable[R], U models.Patch](repo *repository.BaseModel[R, I, U], validate func(*I) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body I
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if validate != nil {
			if err := validate(&body); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
		}

		row, err := repo.Create(c.UserContext(), body)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(row)
	}
}

func updateHandler[R models.Record, I models.Insertable[R], U models.Patch](repo *repository.BaseModel[R, I, U], entity string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body U
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		row, err := repo.Update(c.UserContext(), c.Params("id"), body)
		if err != nil {
			return notFoundAs(err, entity)
		}
		return c.JSON(row)
	}
}

func deleteHandler[R models.Record, I models.Insertable[R], U models.Patch](repo *repository.BaseModel[R, I, U]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := repo.Delete(c.UserContext(), c.Params("id")); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// one serves a single row looked up by the :id param; nil is a 404.
func one[T any](find func(context.Context, string) (*T, error), entity string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		row, err := find(c.UserContext(), c.Params("id"))
		if err != nil {
			return err
		}
		if row == nil {
			return fiber.NewError(fiber.StatusNotFound, entity+" not found")
		}
		return c.JSON(row)
	}
}

// many serves the rows scoped by the named route param.
func many[T any](find func(context.Context, string) ([]T, error), param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := find(c.UserContext(), c.Params(param))
		if err != nil {
			return err
		}
		return c.JSON(rows)
	}
}
