package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"syscall"

	"devlog/internal/config"
	"devlog/internal/ipc"
	"devlog/internal/logclient"
)

type commandContext struct {
	socketFlag *string
	configFlag *string
	apiFlag    *string
	tokenFlag  *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(socketFlag, configFlag, apiFlag, tokenFlag *string) *commandContext {
	return &commandContext{
		socketFlag: socketFlag,
		configFlag: configFlag,
		apiFlag:    apiFlag,
		tokenFlag:  tokenFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) socketPath() (string, error) {
	if c.socketFlag != nil && strings.TrimSpace(*c.socketFlag) != "" {
		return strings.TrimSpace(*c.socketFlag), nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return "", err
	}
	return cfg.SocketPath(), nil
}

// apiClient returns an HTTP client when --api was given, else nil.
func (c *commandContext) apiClient() (*logclient.Client, error) {
	if c.apiFlag == nil || strings.TrimSpace(*c.apiFlag) == "" {
		return nil, nil
	}
	token := ""
	if c.tokenFlag != nil {
		token = strings.TrimSpace(*c.tokenFlag)
	}
	return logclient.New(*c.apiFlag, token)
}

func (c *commandContext) withClient(fn func(*ipc.Client) error) error {
	client, err := c.dialClient()
	if err != nil {
		return err
	}
	defer client.Close()
	return fn(client)
}

func (c *commandContext) dialClient() (*ipc.Client, error) {
	socket, err := c.socketPath()
	if err != nil {
		return nil, err
	}
	client, err := ipc.Dial(socket)
	if err != nil {
		return nil, wrapDialError(err, socket)
	}
	return client, nil
}

func wrapDialError(err error, socket string) error {
	switch {
	case errors.Is(err, syscall.ENOENT) || os.IsNotExist(err):
		return fmt.Errorf("connect to daemon: socket %s not found; start the daemon with `devlog daemon start`", socket)
	case errors.Is(err, syscall.ECONNREFUSED):
		return fmt.Errorf("connect to daemon: socket %s refused the connection; the daemon may have crashed, remove the socket and restart", socket)
	default:
		return fmt.Errorf("connect to daemon: %w", err)
	}
}

// writeEntry, tailContent, searchContent, and daemonStatus route a request to
// the HTTP API when --api is set and to the local socket otherwise.

func (c *commandContext) writeEntry(cmdCtx context.Context, text string) (ipc.WriteResponse, error) {
	if client, err := c.apiClient(); err != nil {
		return ipc.WriteResponse{}, err
	} else if client != nil {
		result, err := client.Write(cmdCtx, text)
		return ipc.WriteResponse{Message: result.Message, Error: result.Error}, err
	}

	var out ipc.WriteResponse
	err := c.withClient(func(client *ipc.Client) error {
		resp, err := client.Write(ipc.WriteRequest{Text: text})
		if err != nil {
			return err
		}
		out = *resp
		return nil
	})
	return out, err
}

func (c *commandContext) tailContent(cmdCtx context.Context, lines int, explicit bool) (ipc.TailResponse, error) {
	if client, err := c.apiClient(); err != nil {
		return ipc.TailResponse{}, err
	} else if client != nil {
		requested := 0
		if explicit {
			requested = lines
		}
		payload, err := client.Tail(cmdCtx, requested)
		return ipc.TailResponse{Content: payload.Content, Error: payload.Error}, err
	}

	req := ipc.TailRequest{}
	if explicit {
		req.Lines = &lines
	}
	var out ipc.TailResponse
	err := c.withClient(func(client *ipc.Client) error {
		resp, err := client.Tail(req)
		if err != nil {
			return err
		}
		out = *resp
		return nil
	})
	return out, err
}

func (c *commandContext) searchContent(cmdCtx context.Context, query string) (ipc.SearchResponse, error) {
	if client, err := c.apiClient(); err != nil {
		return ipc.SearchResponse{}, err
	} else if client != nil {
		payload, err := client.Search(cmdCtx, query)
		return ipc.SearchResponse{Content: payload.Content, Error: payload.Error}, err
	}

	var out ipc.SearchResponse
	err := c.withClient(func(client *ipc.Client) error {
		resp, err := client.Search(ipc.SearchRequest{Query: query})
		if err != nil {
			return err
		}
		out = *resp
		return nil
	})
	return out, err
}

func (c *commandContext) daemonStatus(cmdCtx context.Context) (ipc.StatusResponse, error) {
	if client, err := c.apiClient(); err != nil {
		return ipc.StatusResponse{}, err
	} else if client != nil {
		return client.Status(cmdCtx)
	}

	var out ipc.StatusResponse
	err := c.withClient(func(client *ipc.Client) error {
		resp, err := client.Status()
		if err != nil {
			return err
		}
		out = *resp
		return nil
	})
	return out, err
}
