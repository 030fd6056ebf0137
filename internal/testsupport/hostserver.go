package testsupport

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"testing"

	"kicadlm/internal/hostipc"
)

type hostService struct {
	resp hostipc.ProjectResponse
}

// Project answers the launcher's handshake with the canned project context.
func (s *hostService) Project(_ hostipc.ProjectRequest, resp *hostipc.ProjectResponse) error {
	*resp = s.resp
	return nil
}

// StartHostServer runs a fake KiCad API server on socketPath answering the
// project handshake with resp. It shuts down with the test.
func StartHostServer(t testing.TB, socketPath string, resp hostipc.ProjectResponse) {
	t.Helper()

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		if strings.Contains(err.Error(), "operation not permitted") {
			t.Skipf("unix sockets unavailable: %v", err)
		}
		t.Fatalf("listen on %s: %v", socketPath, err)
	}
	t.Cleanup(func() { listener.Close() })

	srv := rpc.NewServer()
	if err := srv.RegisterName("KiCad", &hostService{resp: resp}); err != nil {
		t.Fatalf("register host service: %v", err)
	}

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			go srv.ServeCodec(jsonrpc.NewServerCodec(conn))
		}
	}()
}
