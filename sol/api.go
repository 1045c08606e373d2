package sol

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/meme-bots/go-nft-collection/types"
	"github.com/meme-bots/go-nft-collection/utils"
	"github.com/pkg/errors"
)

type (
	OffChainAttribute struct {
		TraitType string          `json:"trait_type"`
		Value     json.RawMessage `json:"value"`
	}

	OffChainFile struct {
		URI  string `json:"uri"`
		Type string `json:"type"`
	}

	OffChainProperties struct {
		Files    []OffChainFile `json:"files,omitempty"`
		Category string         `json:"category,omitempty"`
	}

	// OffChainMetadata is the JSON document a metadata record's URI points
	// to.
	OffChainMetadata struct {
		Name                 string              `json:"name"`
		Symbol               string              `json:"symbol"`
		Description          string              `json:"description"`
		Image                string              `json:"image"`
		AnimationURL         string              `json:"animation_url,omitempty"`
		ExternalURL          string              `json:"external_url,omitempty"`
		SellerFeeBasisPoints uint16              `json:"seller_fee_basis_points"`
		Attributes           []OffChainAttribute `json:"attributes,omitempty"`
		Properties           *OffChainProperties `json:"properties,omitempty"`
	}
)

const (
	offChainCacheDuration = 5 * time.Minute
	maxOffChainSize       = 1 << 20
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

func QueryOffChainMetadata(ctx context.Context, uri string) (*OffChainMetadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid metadata uri %q", uri)
	}
	ret, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer ret.Body.Close()

	if ret.StatusCode == http.StatusNotFound {
		return nil, types.ErrNotFound
	}
	if ret.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("metadata uri %q returned status %d", uri, ret.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(ret.Body, maxOffChainSize))
	if err != nil {
		return nil, err
	}

	var doc OffChainMetadata
	err = json.Unmarshal(body, &doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode off-chain metadata")
	}
	return &doc, nil
}

// GetOffChainMetadata follows the URI of mint's metadata record.
func (s *Solana) GetOffChainMetadata(ctx context.Context, mint solana.PublicKey) (*OffChainMetadata, error) {
	account, err := s.GetMetadata(ctx, mint)
	if err != nil {
		return nil, err
	}
	uri := utils.TrimSpace(account.Data.Uri)
	if uri == "" {
		return nil, types.ErrNotFound
	}

	data, err := utils.GetOrLoad(ctx, s.cache, "OffChainMetadata:"+uri, offChainCacheDuration, func() ([]byte, error) {
		doc, err := QueryOffChainMetadata(ctx, uri)
		if err != nil {
			return nil, err
		}
		return json.Marshal(doc)
	})
	if err != nil {
		return nil, err
	}

	var doc OffChainMetadata
	if err = json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
