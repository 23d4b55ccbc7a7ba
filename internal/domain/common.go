package domain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/mitchellh/mapstructure"
	"github.com/socialharmony/backend/internal/common"
	"github.com/socialharmony/backend/internal/entity"
	"github.com/socialharmony/backend/internal/repository"
	"github.com/socialharmony/backend/pkg/api"
	"github.com/socialharmony/backend/pkg/ethutil"
	"github.com/socialharmony/backend/pkg/xcontext"
)

// storeKeyAll is the key of listing records.
const storeKeyAll = "all"

func callOpts(ctx context.Context) *bind.CallOpts {
	return &bind.CallOpts{Context: ctx}
}

// read runs one contract call and counts it.
func read[T any](method string, call func() (T, error)) (T, error) {
	result, err := call()
	common.ObserveContractCall(method, err)
	if err != nil {
		return result, fmt.Errorf("%s: %w", method, err)
	}

	return result, nil
}

// fetchMetadata downloads the JSON document at uri and decodes it into out. Unknown fields are
// kept by the ",remain" field of out.
func fetchMetadata(ctx context.Context, apiGenerator api.Generator, kind, uri string, out any) error {
	err := func() error {
		url := ethutil.ResolveURI(uri, xcontext.Configs(ctx).Metadata.Gateways)
		if url == "" {
			return errors.New("empty metadata uri")
		}

		resp, err := apiGenerator.New(url).GET(ctx)
		if err != nil {
			return err
		}

		if !resp.OK() {
			return fmt.Errorf("metadata %s responded with status %d", url, resp.Code)
		}

		body, ok := resp.Body.(api.JSON)
		if !ok {
			return fmt.Errorf("metadata %s is not a json object", url)
		}

		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           out,
			WeaklyTypedInput: true,
		})
		if err != nil {
			return err
		}

		return decoder.Decode(map[string]any(body))
	}()

	common.ObserveMetadataFetch(kind, err)
	return err
}

// mirror writes value into the view store when one is configured. Failures are only logged,
// the store never affects the result of a fetch.
func mirror(ctx context.Context, store repository.ViewStore, kind entity.ViewKind, key string, value any) {
	if store == nil {
		return
	}

	if err := store.Put(ctx, kind, key, value); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot store view %s/%s: %v", kind, key, err)
	}
}

func bigString(n *big.Int) string {
	if n == nil {
		return "0"
	}

	return n.String()
}

func isExecutionReverted(err error) bool {
	return err != nil && strings.Contains(err.Error(), "execution reverted")
}
