package providers

import (
	"context"
	"encoding/json"
	"fmt"

	. "github.com/redexp/pedigree/types"
	"github.com/sourcegraph/jsonrpc2"
	"github.com/tliron/glsp"
	proto "github.com/tliron/glsp/protocol_3_16"
)

func CreateRequestHandler(handlers ...glsp.Handler) *RequestHandler {
	return &RequestHandler{
		Handlers: handlers,
	}
}

func NewProtocolHandlers() *proto.Handler {
	return &proto.Handler{
		Initialize:    Initialize,
		Initialized:   Initialized,
		Shutdown:      Shutdown,
		SetTrace:      SetTrace,
		CancelRequest: CancelRequest,
	}
}

type RequestHandler struct {
	Handlers []glsp.Handler
}

func (req *RequestHandler) RpcHandle(c context.Context, conn *jsonrpc2.Conn, r *jsonrpc2.Request) (res any, err error) {
	if r.Method == "exit" {
		err = conn.Close()
		return nil, err
	}

	ctx := &glsp.Context{
		Method: r.Method,
		Notify: func(method string, params any) {
			_ = conn.Notify(c, method, params)
		},
	}

	if r.Params != nil {
		ctx.Params = *r.Params
	}

	var validMethod bool
	var validParams bool

	res, validMethod, validParams, err = req.Handle(ctx)

	if !validMethod {
		return nil, &jsonrpc2.Error{
			Code:    jsonrpc2.CodeMethodNotFound,
			Message: fmt.Sprintf("Method not found: %s", r.Method),
		}
	}

	if !validParams {
		e := &jsonrpc2.Error{
			Code: jsonrpc2.CodeInvalidParams,
		}

		if err != nil {
			e.Message = err.Error()
		}

		err = e
	}

	return res, err
}

func (req *RequestHandler) Handle(ctx *Ctx) (res any, validMethod bool, validParams bool, err error) {
	for _, h := range req.Handlers {
		res, validMethod, validParams, err = h.Handle(ctx)

		if validMethod {
			return
		}
	}

	return
}

// Method handles one request once the method name matched.
type Method func(ctx *Ctx) (res any, validParams bool, err error)

// MethodHandlers dispatches by method name.
type MethodHandlers map[string]Method

func (req MethodHandlers) Handle(ctx *Ctx) (res any, validMethod bool, validParams bool, err error) {
	method, validMethod := req[ctx.Method]

	if !validMethod {
		return
	}

	res, validParams, err = method(ctx)

	return
}

func WithParams[P any](cb func(*Ctx, *P) (any, error)) Method {
	return func(ctx *Ctx) (res any, validParams bool, err error) {
		var params P

		if err = json.Unmarshal(ctx.Params, &params); err == nil {
			validParams = true
			res, err = cb(ctx, &params)
		}

		return
	}
}

func NoParams(cb func(*Ctx) (any, error)) Method {
	return func(ctx *Ctx) (res any, validParams bool, err error) {
		validParams = true
		res, err = cb(ctx)

		return
	}
}
