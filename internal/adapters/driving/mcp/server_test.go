package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_Success(t *testing.T) {
	server, err := NewServer(&Ports{
		Search:  &mockSearchService{},
		Aspects: &mockAspectService{},
	})

	require.NoError(t, err)
	assert.NotNil(t, server)
}

func TestNewServer_MissingSearchService(t *testing.T) {
	_, err := NewServer(&Ports{Aspects: &mockAspectService{}})

	assert.ErrorIs(t, err, ErrMissingSearchService)
}

func TestNewServer_MissingAspectService(t *testing.T) {
	_, err := NewServer(&Ports{Search: &mockSearchService{}})

	assert.ErrorIs(t, err, ErrMissingAspectService)
}

func TestPorts_Validate(t *testing.T) {
	ports := &Ports{
		Search:  &mockSearchService{},
		Aspects: &mockAspectService{},
	}

	assert.NoError(t, ports.Validate())
}
