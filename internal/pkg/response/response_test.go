package response

import (
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
)

func TestDefaultMessage(t *testing.T) {
	assert.Equal(t, MessageOK, DefaultMessage(fiber.StatusOK))
	assert.Equal(t, MessageCreated, DefaultMessage(fiber.StatusCreated))
	assert.Equal(t, MessageOK, DefaultMessage(fiber.StatusNoContent))
	assert.Equal(t, MessageUnprocessableEntity, DefaultMessage(fiber.StatusUnprocessableEntity))
	assert.Equal(t, MessageServiceUnavailable, DefaultMessage(fiber.StatusServiceUnavailable))
	assert.Equal(t, MessageInternalServerError, DefaultMessage(fiber.StatusBadGateway))
	assert.Equal(t, MessageError, DefaultMessage(fiber.StatusTeapot))
}
