package ipc

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"
)

// Client provides RPC access to the daemon.
type Client struct {
	conn   net.Conn
	client *rpc.Client
}

// Dial connects to the IPC server at the given socket path.
func Dial(path string) (*Client, error) {
	conn, err := net.DialTimeout("unix", path, 2*time.Second)
	if err != nil {
		return nil, err
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

// Tail fetches the last lines of the log.
func (c *Client) Tail(req TailRequest) (*TailResponse, error) {
	var resp TailResponse
	if err := c.client.Call("DevLog.Tail", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Write appends a timestamped entry to the log.
func (c *Client) Write(req WriteRequest) (*WriteResponse, error) {
	var resp WriteResponse
	if err := c.client.Call("DevLog.Write", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Search returns log lines matching the query.
func (c *Client) Search(req SearchRequest) (*SearchResponse, error) {
	var resp SearchResponse
	if err := c.client.Call("DevLog.Search", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Status retrieves the daemon status.
func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.client.Call("DevLog.Status", StatusRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Stop asks the daemon process to shut down.
func (c *Client) Stop() (*StopResponse, error) {
	var resp StopResponse
	if err := c.client.Call("DevLog.Stop", StopRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
