package server

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"rompefaja/internal/config"
)

func TestNew_AppliesConfiguredTimeouts(t *testing.T) {
	cfg := config.ServerConfig{
		Port:         9090,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 4 * time.Second,
		IdleTimeout:  5 * time.Second,
	}

	srv := New(cfg, http.NewServeMux(), zap.NewNop())

	assert.Equal(t, ":9090", srv.httpServer.Addr)
	assert.Equal(t, 3*time.Second, srv.httpServer.ReadTimeout)
	assert.Equal(t, 4*time.Second, srv.httpServer.WriteTimeout)
	assert.Equal(t, 5*time.Second, srv.httpServer.IdleTimeout)
}
