package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/theapemachine/jsonrpc-go/pkg/errors"
	"github.com/theapemachine/jsonrpc-go/pkg/jsonrpc"
	"github.com/theapemachine/jsonrpc-go/pkg/transport"
)

// echoServer is a minimal JSON-RPC peer: it multiplies positional
// params and answers unknown methods with the reserved error.
func echoServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req jsonrpc.Request

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			_ = json.NewEncoder(w).Encode(jsonrpc.Response{
				JSONRPC: jsonrpc.Version,
				Error:   errors.ErrParseError,
			})
			return
		}

		if req.IsNotification() {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		var id any
		_ = json.Unmarshal(req.ID, &id)

		if req.Method != "multiply" {
			_ = json.NewEncoder(w).Encode(jsonrpc.Response{
				JSONRPC: jsonrpc.Version,
				ID:      id,
				Error:   errors.ErrMethodNotFound,
			})
			return
		}

		var params []float64
		if err := json.Unmarshal(req.Params, &params); err != nil {
			_ = json.NewEncoder(w).Encode(jsonrpc.Response{
				JSONRPC: jsonrpc.Version,
				ID:      id,
				Error:   errors.ErrInvalidParams,
			})
			return
		}

		product := 1.0
		for _, p := range params {
			product *= p
		}

		result, _ := json.Marshal(product)

		_ = json.NewEncoder(w).Encode(jsonrpc.Response{
			JSONRPC: jsonrpc.Version,
			ID:      id,
			Result:  result,
		})
	}))
}

func TestClientOverHTTP(t *testing.T) {
	Convey("Given a client talking to a live JSON-RPC server", t, func() {
		server := echoServer()
		defer server.Close()

		rpc := New(transport.NewHTTP(server.URL), quiet())

		Convey("When calling a known method", func() {
			result, err := rpc.Call(context.Background(), "multiply", 3, 5)

			So(err, ShouldBeNil)
			So(result, ShouldEqual, float64(15))
		})

		Convey("When calling an unknown method", func() {
			_, err := rpc.Call(context.Background(), "divide", 3, 5)

			So(err, ShouldHaveSameTypeAs, &errors.RpcError{})
			So(err.(*errors.RpcError).Code, ShouldEqual, errors.ErrMethodNotFound.Code)
		})

		Convey("When calling with malformed params", func() {
			_, err := rpc.CallNamed(context.Background(), "multiply", map[string]any{"a": 3})

			So(err, ShouldHaveSameTypeAs, &errors.RpcError{})
			So(err.(*errors.RpcError).Code, ShouldEqual, errors.ErrInvalidParams.Code)
		})

		Convey("When notifying", func() {
			result, err := rpc.Notify(context.Background(), "multiply", 3, 5)

			Convey("Then the 204 reply processes to nil", func() {
				So(err, ShouldBeNil)
				So(result, ShouldBeNil)
			})
		})
	})
}
