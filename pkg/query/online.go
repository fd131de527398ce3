package query

import (
	"context"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/yourorg/snarkexec/pkg/fields"
)

// Client answers state lookups from a live ledger endpoint. It is the online
// twin of OfflineQuery.
type Client struct {
	rpc *rpc.Client
}

var _ Query = (*Client)(nil)

func Dial(url string) (*Client, error) {
	return DialContext(context.Background(), url)
}

func DialContext(ctx context.Context, url string) (*Client, error) {
	c, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, err
	}
	return &Client{rpc: c}, nil
}

func (c *Client) Close() { c.rpc.Close() }

func (c *Client) CurrentStateRoot() (fr.Element, error) {
	return c.CurrentStateRootContext(context.Background())
}

func (c *Client) CurrentStateRootContext(ctx context.Context) (fr.Element, error) {
	var root string
	if err := c.rpc.CallContext(ctx, &root, "ledger_getStateRoot"); err != nil {
		return fr.Element{}, err
	}
	return fields.ParseRoot(root)
}

func (c *Client) StatePathForCommitment(commitment *fr.Element) (*StatePath, error) {
	return c.StatePathForCommitmentContext(context.Background(), commitment)
}

func (c *Client) StatePathForCommitmentContext(ctx context.Context, commitment *fr.Element) (*StatePath, error) {
	var path string
	if err := c.rpc.CallContext(ctx, &path, "ledger_getStatePath", fields.Format(*commitment)); err != nil {
		return nil, err
	}
	return ParseStatePath(path)
}
