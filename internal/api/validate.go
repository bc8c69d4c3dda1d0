package api

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// required trims *s in place and fails when nothing is left.
func required(field string, s *string) error {
	*s = strings.TrimSpace(*s)
	if *s == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

func nonNegative(field string, v float64) error {
	if v < 0 {
		return fmt.Errorf("%s cannot be negative", field)
	}
	return nil
}

func positive(field string, v float64) error {
	if v <= 0 {
		return fmt.Errorf("%s must be greater than zero", field)
	}
	return nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// queryFloat reads a required float query parameter. Any finite number is
// accepted, negative ones included.
func queryFloat(c *fiber.Ctx, key string) (float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, fiber.NewError(fiber.StatusBadRequest, key+" is required")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fiber.NewError(fiber.StatusBadRequest, key+" must be a number")
	}
	return v, nil
}

// queryDays reads a positive day count, falling back to def when absent.
func queryDays(c *fiber.Ctx, def int) (int, error) {
	if c.Query("days") == "" {
		return def, nil
	}
	v := c.QueryInt("days", 0)
	if v <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "days must be a positive integer")
	}
	return v, nil
}
