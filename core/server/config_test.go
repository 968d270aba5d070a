package server_test

import (
	"testing"

	"decochanges/core/server"

	"github.com/stretchr/testify/assert"
)

func TestAddr(t *testing.T) {
	cfg := server.Config{Port: "8080"}
	assert.Equal(t, ":8080", cfg.Addr())
}
