package sol

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
	"github.com/stretchr/testify/require"
)

type rpcHandler func(params []json.RawMessage) (interface{}, *jsonrpc.RPCError)

// fakeNode answers the JSON-RPC methods a test registers.
type fakeNode struct {
	mu       sync.Mutex
	handlers map[string]rpcHandler
	calls    map[string]int
	server   *httptest.Server
}

func newFakeNode(t *testing.T) *fakeNode {
	n := &fakeNode{
		handlers: make(map[string]rpcHandler),
		calls:    make(map[string]int),
	}
	n.server = httptest.NewServer(http.HandlerFunc(n.serveHTTP))
	t.Cleanup(n.server.Close)
	return n
}

func (n *fakeNode) URL() string {
	return n.server.URL
}

func (n *fakeNode) handle(method string, h rpcHandler) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.handlers[method] = h
}

func (n *fakeNode) count(method string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.calls[method]
}

func (n *fakeNode) serveHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID     json.RawMessage   `json:"id"`
		Method string            `json:"method"`
		Params []json.RawMessage `json:"params"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	n.mu.Lock()
	n.calls[req.Method]++
	h, ok := n.handlers[req.Method]
	n.mu.Unlock()

	resp := map[string]interface{}{"jsonrpc": "2.0", "id": req.ID}
	if !ok {
		resp["error"] = &jsonrpc.RPCError{Code: -32601, Message: "Method not found"}
	} else if result, rpcErr := h(req.Params); rpcErr != nil {
		resp["error"] = rpcErr
	} else {
		resp["result"] = result
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func withContext(value interface{}) map[string]interface{} {
	return map[string]interface{}{
		"context": map[string]interface{}{"slot": 100},
		"value":   value,
	}
}

func accountValue(owner solana.PublicKey, data []byte, executable bool) map[string]interface{} {
	return map[string]interface{}{
		"lamports":   1_000_000,
		"owner":      owner.String(),
		"data":       []string{base64.StdEncoding.EncodeToString(data), "base64"},
		"executable": executable,
		"rentEpoch":  0,
		"space":      len(data),
	}
}

func (n *fakeNode) withBlockhash(hash solana.Hash) {
	n.handle("getLatestBlockhash", func([]json.RawMessage) (interface{}, *jsonrpc.RPCError) {
		return withContext(map[string]interface{}{
			"blockhash":            hash.String(),
			"lastValidBlockHeight": 200,
		}), nil
	})
}

func (n *fakeNode) withStatus(status string, txErr interface{}) {
	n.handle("getSignatureStatuses", func([]json.RawMessage) (interface{}, *jsonrpc.RPCError) {
		return withContext([]interface{}{map[string]interface{}{
			"slot":               100,
			"confirmations":      1,
			"err":                txErr,
			"confirmationStatus": status,
		}}), nil
	})
}

// withSend accepts every transaction and keeps the last one.
func (n *fakeNode) withSend(sent *[]json.RawMessage) {
	n.handle("sendTransaction", func(params []json.RawMessage) (interface{}, *jsonrpc.RPCError) {
		n.mu.Lock()
		*sent = params
		n.mu.Unlock()

		tx, err := decodeSent(params)
		if err != nil {
			return nil, &jsonrpc.RPCError{Code: -32602, Message: err.Error()}
		}
		return tx.Signatures[0].String(), nil
	})
}

func decodeSent(params []json.RawMessage) (*solana.Transaction, error) {
	var encoded string
	if err := json.Unmarshal(params[0], &encoded); err != nil {
		return nil, err
	}
	return solana.TransactionFromBase64(encoded)
}

func sentTransaction(t *testing.T, params []json.RawMessage) *solana.Transaction {
	require.NotEmpty(t, params)
	tx, err := decodeSent(params)
	require.NoError(t, err)
	return tx
}
