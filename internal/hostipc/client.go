package hostipc

import (
	"errors"
	"fmt"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"strings"
	"time"
)

// SocketPath returns the host API socket advertised by the environment.
func SocketPath() string {
	return strings.TrimSpace(os.Getenv("KICAD_API_SOCKET"))
}

// TokenPresent reports whether the host exported an auth token. The value
// itself is never read beyond presence.
func TokenPresent() bool {
	return strings.TrimSpace(os.Getenv("KICAD_API_TOKEN")) != ""
}

// Client provides RPC access to the host API server.
type Client struct {
	conn   net.Conn
	client *rpc.Client
}

// Dial connects to the host API socket with a bounded timeout.
func Dial(path string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("host API socket not configured")
	}
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	conn, err := net.DialTimeout("unix", path, timeout)
	if err != nil {
		return nil, fmt.Errorf("connect to host socket %s: %w", path, err)
	}
	rpcClient := rpc.NewClientWithCodec(jsonrpc.NewClientCodec(conn))
	return &Client{conn: conn, client: rpcClient}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c.client != nil {
		_ = c.client.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Project fetches the active project context. The deadline bounds the whole
// round trip so a wedged host cannot hang the launch.
func (c *Client) Project(timeout time.Duration) (*ProjectResponse, error) {
	if timeout > 0 {
		_ = c.conn.SetDeadline(time.Now().Add(timeout))
		defer c.conn.SetDeadline(time.Time{}) //nolint:errcheck
	}
	var resp ProjectResponse
	if err := c.client.Call("KiCad.Project", ProjectRequest{}, &resp); err != nil {
		return nil, fmt.Errorf("query project: %w", err)
	}
	return &resp, nil
}

// Handshake dials the socket, fetches the project context, and closes the
// connection, all within timeout.
func Handshake(socket string, timeout time.Duration) (*ProjectResponse, error) {
	client, err := Dial(socket, timeout)
	if err != nil {
		return nil, err
	}
	defer client.Close()
	return client.Project(timeout)
}
