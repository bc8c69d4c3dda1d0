package api

import (
	"context"
	"errors"
	"log"
	"strings"

	"venue-backoffice/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres SQLSTATE codes the API answers with a client error.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
	pgInvalidText         = "22P02"
)

// SQLite reports constraint failures only through the message text.
const (
	sqliteUniqueFailed     = "UNIQUE constraint failed"
	sqliteForeignKeyFailed = "FOREIGN KEY constraint failed"
)

func errorHandler(lg *log.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, msg := classify(err)
		if status == fiber.StatusInternalServerError {
			lg.Printf("Unexpected error on %s %s: %v", c.Method(), c.Path(), err)
		}
		return c.Status(status).JSON(fiber.Map{
			"error": msg,
		})
	}
}

// classify maps an error returned by a handler to a status and a message
// safe to show to clients.
func classify(err error) (int, string) {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, fe.Message
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.StatusNotFound, "Record not found"
	case errors.Is(err, repository.ErrNotUnique):
		return fiber.StatusConflict, "More than one record matched"
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusGatewayTimeout, "Database did not answer in time"
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fiber.StatusConflict, "Record already exists"
		case pgForeignKeyViolation:
			return fiber.StatusConflict, "Referenced record does not exist or is still in use"
		case pgCheckViolation, pgNotNullViolation, pgInvalidText:
			return fiber.StatusBadRequest, "Invalid value: " + pgErr.Message
		}
	}

	switch msg := err.Error(); {
	case strings.Contains(msg, sqliteUniqueFailed):
		return fiber.StatusConflict, "Record already exists"
	case strings.Contains(msg, sqliteForeignKeyFailed):
		return fiber.StatusConflict, "Referenced record does not exist or is still in use"
	}

	return fiber.StatusInternalServerError, "Unexpected server error"
}

// notFoundAs turns gorm.ErrRecordNotFound into a 404 naming the entity.
func notFoundAs(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, entity+" not found")
	}
	return err
}
