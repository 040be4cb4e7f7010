package out

import (
	"context"
	"fmt"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"tokenhub/internal/modules/mirror/domain"
	mirrorout "tokenhub/internal/modules/mirror/port/out"
)

const dialTimeout = 2 * time.Second

// JSONRPCHubServer serves a hub-side RemoteStore over TCP.
type JSONRPCHubServer struct{}

// JSONRPCRemoteStore is the device-side client for a served hub.
type JSONRPCRemoteStore struct {
	addr string
}

func NewJSONRPCHubServer() mirrorout.HubServer {
	return &JSONRPCHubServer{}
}

func NewJSONRPCRemoteStore(addr string) mirrorout.RemoteStore {
	return &JSONRPCRemoteStore{addr: addr}
}

type rpcHandler struct {
	store mirrorout.RemoteStore
}

type SaveScanReq struct {
	Space  string
	Record domain.Document
}

type ClearUserReq struct {
	Space  string
	UserID string
}

type ClearTodayReq struct {
	Space       string
	UserID      string
	StartMillis int64
	EndMillis   int64
}

type ListReq struct {
	Space  string
	UserID string
}

type ListResp struct {
	Records []domain.Document
}

type Empty struct{}

func (h *rpcHandler) SaveScan(req SaveScanReq, _ *Empty) error {
	return h.store.SaveScan(context.Background(), req.Space, req.Record)
}

func (h *rpcHandler) ClearUser(req ClearUserReq, _ *Empty) error {
	return h.store.ClearUser(context.Background(), req.Space, req.UserID)
}

func (h *rpcHandler) ClearToday(req ClearTodayReq, _ *Empty) error {
	return h.store.ClearToday(context.Background(), req.Space, req.UserID, req.StartMillis, req.EndMillis)
}

func (h *rpcHandler) List(req ListReq, resp *ListResp) error {
	records, err := h.store.List(context.Background(), req.Space, req.UserID)
	if err != nil {
		return err
	}
	resp.Records = records
	return nil
}

func (s *JSONRPCHubServer) Serve(ctx context.Context, addr string, store mirrorout.RemoteStore) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen hub addr: %w", err)
	}
	defer ln.Close()

	rpcSrv := rpc.NewServer()
	if err := rpcSrv.RegisterName("Hub", &rpcHandler{store: store}); err != nil {
		return fmt.Errorf("register hub handler: %w", err)
	}

	stop := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			_ = ln.Close()
		case <-stop:
		}
	}()
	defer close(stop)

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue
			}
			return err
		}
		go rpcSrv.ServeCodec(jsonrpc.NewServerCodec(conn))
	}
}

func (c *JSONRPCRemoteStore) SaveScan(ctx context.Context, space string, doc domain.Document) error {
	return c.call(ctx, "Hub.SaveScan", SaveScanReq{Space: space, Record: doc}, &Empty{})
}

func (c *JSONRPCRemoteStore) ClearUser(ctx context.Context, space, userID string) error {
	return c.call(ctx, "Hub.ClearUser", ClearUserReq{Space: space, UserID: userID}, &Empty{})
}

func (c *JSONRPCRemoteStore) ClearToday(ctx context.Context, space, userID string, startMillis, endMillis int64) error {
	return c.call(ctx, "Hub.ClearToday", ClearTodayReq{Space: space, UserID: userID, StartMillis: startMillis, EndMillis: endMillis}, &Empty{})
}

func (c *JSONRPCRemoteStore) List(ctx context.Context, space, userID string) ([]domain.Document, error) {
	resp := ListResp{}
	if err := c.call(ctx, "Hub.List", ListReq{Space: space, UserID: userID}, &resp); err != nil {
		return nil, err
	}
	return resp.Records, nil
}

func (c *JSONRPCRemoteStore) call(ctx context.Context, method string, args, reply any) error {
	client, err := c.dial(ctx)
	if err != nil {
		return err
	}
	defer client.Close()
	done := make(chan error, 1)
	go func() { done <- client.Call(method, args, reply) }()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *JSONRPCRemoteStore) dial(ctx context.Context) (*rpc.Client, error) {
	timeout := dialTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	conn, err := net.DialTimeout("tcp", c.addr, timeout)
	if err != nil {
		return nil, fmt.Errorf("dial hub: %w", err)
	}
	return rpc.NewClientWithCodec(jsonrpc.NewClientCodec(conn)), nil
}
