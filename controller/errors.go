package controller

import "github.com/gofiber/fiber/v2"

type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func ErrUnauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(&ErrorResponse{
		Error: "Unauthorized",
	})
}

func ErrMethodNotAllowed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusMethodNotAllowed).JSON(&ErrorResponse{
		Error: "Method not allowed",
	})
}

func ErrNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(&ErrorResponse{
		Error: "Not found",
	})
}

func ErrBadRequest(c *fiber.Ctx, errorText string) error {
	return c.Status(fiber.StatusBadRequest).JSON(&ErrorResponse{
		Error: errorText,
	})
}

func ErrInternalServerError(c *fiber.Ctx, errorText string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(&ErrorResponse{
		Error: errorText,
	})
}

func ErrInternalServerErrorDetail(c *fiber.Ctx, errorText string, detail string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(&ErrorResponse{
		Error:  errorText,
		Detail: detail,
	})
}
