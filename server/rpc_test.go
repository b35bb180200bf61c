package server

import (
	"context"
	"io"
	"log"
	"net"
	"testing"

	"github.com/sourcegraph/jsonrpc2"
	"github.com/stretchr/testify/assert"

	"github.com/lexcodex/epimake/makefile"
)

func startRPCClient(t *testing.T, settings *makefile.Settings) *jsonrpc2.Conn {
	t.Helper()
	serverEnd, clientEnd := net.Pipe()
	svc := NewRPCService(settings, log.New(io.Discard, "", 0))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = svc.ServeConn(ctx, serverEnd)
	}()

	stream := jsonrpc2.NewBufferedStream(clientEnd, jsonrpc2.VSCodeObjectCodec{})
	noop := jsonrpc2.HandlerWithError(func(context.Context, *jsonrpc2.Conn, *jsonrpc2.Request) (interface{}, error) {
		return nil, nil
	})
	client := jsonrpc2.NewConn(context.Background(), stream, noop)
	t.Cleanup(func() {
		client.Close()
		cancel()
		<-done
	})
	return client
}

func TestRPCServiceRender(t *testing.T) {
	client := startRPCClient(t, makefile.DefaultSettings())

	var resp RenderResponse
	err := client.Call(context.Background(), "makefile/render", RenderRequest{
		Project: "demo",
		Sources: []string{"src/main.c"},
		Year:    2025,
	}, &resp)

	assert.NoError(t, err)
	assert.Contains(t, resp.Content, "NAME = demo")
	assert.Contains(t, resp.Content, "## EPITECH PROJECT, 2025")
	assert.Equal(t, "demo", resp.Config.BinaryName)
}

func TestRPCServiceRenderRejectsMissingProject(t *testing.T) {
	client := startRPCClient(t, makefile.DefaultSettings())

	var resp RenderResponse
	err := client.Call(context.Background(), "makefile/render", RenderRequest{}, &resp)

	assert.ErrorContains(t, err, "Project name is required")
}

func TestRPCServiceSettings(t *testing.T) {
	settings := makefile.DefaultSettings()
	settings.BuildDir = "objects"
	client := startRPCClient(t, settings)

	var got makefile.Settings
	err := client.Call(context.Background(), "makefile/settings", nil, &got)

	assert.NoError(t, err)
	assert.Equal(t, "objects", got.BuildDir)
	assert.Equal(t, "Makefile", got.Output)
}

func TestRPCServiceUnknownMethod(t *testing.T) {
	client := startRPCClient(t, makefile.DefaultSettings())

	var resp interface{}
	err := client.Call(context.Background(), "makefile/unknown", nil, &resp)

	assert.ErrorContains(t, err, "method not handled")
}
