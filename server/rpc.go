package server

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net"
	"os"

	"github.com/sourcegraph/jsonrpc2"

	"github.com/lexcodex/epimake/makefile"
)

// RPCService answers Makefile render requests over JSON-RPC 2.0.
type RPCService struct {
	settings *makefile.Settings
	logger   *log.Logger
}

// NewRPCService builds a service around the provided settings.
func NewRPCService(settings *makefile.Settings, logger *log.Logger) *RPCService {
	if logger == nil {
		logger = log.New(os.Stderr, "rpc ", log.LstdFlags)
	}
	return &RPCService{settings: settings, logger: logger}
}

func (s *RPCService) handler() jsonrpc2.Handler {
	return jsonrpc2.HandlerWithError(func(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (interface{}, error) {
		if req.Notif {
			return nil, nil
		}
		switch req.Method {
		case "makefile/render":
			if req.Params == nil {
				return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: "params required"}
			}
			var params RenderRequest
			if err := json.Unmarshal(*req.Params, &params); err != nil {
				return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeParseError, Message: err.Error()}
			}
			resp, err := renderFromRequest(&params, s.settings)
			if err != nil {
				return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: err.Error()}
			}
			return resp, nil
		case "makefile/settings":
			return s.settings, nil
		default:
			return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeMethodNotFound, Message: "method not handled"}
		}
	})
}

// ServeConn answers requests on rwc until the peer disconnects or ctx ends.
func (s *RPCService) ServeConn(ctx context.Context, rwc io.ReadWriteCloser) error {
	stream := jsonrpc2.NewBufferedStream(rwc, jsonrpc2.VSCodeObjectCodec{})
	conn := jsonrpc2.NewConn(ctx, stream, s.handler())
	select {
	case <-ctx.Done():
		_ = conn.Close()
		return ctx.Err()
	case <-conn.DisconnectNotify():
		return nil
	}
}

// ServeStdio answers requests on the provided reader/writer pair.
func (s *RPCService) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	return s.ServeConn(ctx, &stdioPipe{in: in, out: out})
}

// ListenAndServe accepts TCP connections on addr until ctx ends.
func (s *RPCService) ListenAndServe(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	go func() {
		<-ctx.Done()
		_ = listener.Close()
	}()
	s.logger.Printf("RPC listening on %s", listener.Addr())
	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		go func() {
			if err := s.ServeConn(ctx, conn); err != nil && ctx.Err() == nil {
				s.logger.Printf("RPC connection error: %v", err)
			}
		}()
	}
}

type stdioPipe struct {
	in  io.Reader
	out io.Writer
}

func (p *stdioPipe) Read(b []byte) (int, error)  { return p.in.Read(b) }
func (p *stdioPipe) Write(b []byte) (int, error) { return p.out.Write(b) }
func (p *stdioPipe) Close() error                { return nil }
