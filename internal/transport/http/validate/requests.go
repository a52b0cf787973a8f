package validate

import (
	"encoding/json"
	"math/big"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	svcdto "github.com/ammlab/amm-service/internal/service/dto"
	"github.com/ammlab/amm-service/internal/transport/http/dto"
)

// AddLiquidityRequestValidate parses and validates a deposit body and returns
// the service dto.
func AddLiquidityRequestValidate(r *http.Request) (*svcdto.AddLiquidityRequest, int, error) {
	var body dto.AddLiquidityRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, http.StatusBadRequest, errors.Wrap(err, "bad json body")
	}

	sender, err := parseAddr("sender", body.Sender)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	assetA, err := parseAddr("asset_a", body.AssetA)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	assetB, err := parseAddr("asset_b", body.AssetB)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	recipient, err := parseAddr("recipient", body.Recipient)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	desiredA, err := parseAmount("amount_a_desired", body.AmountADesired)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	desiredB, err := parseAmount("amount_b_desired", body.AmountBDesired)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	minA, err := parseOptionalAmount("amount_a_min", body.AmountAMin)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	minB, err := parseOptionalAmount("amount_b_min", body.AmountBMin)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	deadline, err := parseDeadline(body.Deadline)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	return &svcdto.AddLiquidityRequest{
		Sender:    sender,
		AssetA:    assetA,
		AssetB:    assetB,
		DesiredA:  desiredA,
		DesiredB:  desiredB,
		MinA:      minA,
		MinB:      minB,
		Recipient: recipient,
		Deadline:  deadline,
	}, 0, nil
}

// RemoveLiquidityRequestValidate parses and validates a withdrawal body and
// returns the service dto.
func RemoveLiquidityRequestValidate(r *http.Request) (*svcdto.RemoveLiquidityRequest, int, error) {
	var body dto.RemoveLiquidityRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, http.StatusBadRequest, errors.Wrap(err, "bad json body")
	}

	sender, err := parseAddr("sender", body.Sender)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	assetA, err := parseAddr("asset_a", body.AssetA)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	assetB, err := parseAddr("asset_b", body.AssetB)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	recipient, err := parseAddr("recipient", body.Recipient)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	shares, err := parseAmount("shares", body.Shares)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	minA, err := parseOptionalAmount("amount_a_min", body.AmountAMin)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	minB, err := parseOptionalAmount("amount_b_min", body.AmountBMin)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	deadline, err := parseDeadline(body.Deadline)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	return &svcdto.RemoveLiquidityRequest{
		Sender:    sender,
		AssetA:    assetA,
		AssetB:    assetB,
		Shares:    shares,
		MinA:      minA,
		MinB:      minB,
		Recipient: recipient,
		Deadline:  deadline,
	}, 0, nil
}

// SwapRequestValidate parses and validates a swap body and returns the
// service dto.
func SwapRequestValidate(r *http.Request) (*svcdto.SwapRequest, int, error) {
	var body dto.SwapRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, http.StatusBadRequest, errors.Wrap(err, "bad json body")
	}

	sender, err := parseAddr("sender", body.Sender)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	recipient, err := parseAddr("recipient", body.Recipient)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	amountIn, err := parseAmount("amount_in", body.AmountIn)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	amountOutMin, err := parseOptionalAmount("amount_out_min", body.AmountOutMin)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	if len(body.Path) != 2 {
		return nil, http.StatusBadRequest, errors.Errorf("path must have exactly 2 assets, got %d", len(body.Path))
	}
	path := make([]common.Address, 0, len(body.Path))
	for _, s := range body.Path {
		addr, err := parseAddr("path", s)
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		path = append(path, addr)
	}

	deadline, err := parseDeadline(body.Deadline)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	return &svcdto.SwapRequest{
		Sender:       sender,
		AmountIn:     amountIn,
		AmountOutMin: amountOutMin,
		Path:         path,
		Recipient:    recipient,
		Deadline:     deadline,
	}, 0, nil
}

// PriceRequestValidate parses /price query params and returns the service dto.
func PriceRequestValidate(r *http.Request) (*svcdto.PriceRequest, int, error) {
	q := r.URL.Query()
	base, err := parseAddr("base", q.Get("base"))
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	quote, err := parseAddr("quote", q.Get("quote"))
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	return &svcdto.PriceRequest{AssetA: base, AssetB: quote}, 0, nil
}

// AmountOutRequestValidate parses /amount_out query params and returns the
// service dto.
func AmountOutRequestValidate(r *http.Request) (*svcdto.AmountOutRequest, int, error) {
	q := r.URL.Query()
	amountIn, err := parseOptionalAmount("amount_in", q.Get("amount_in"))
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	reserveIn, err := parseAmount("reserve_in", q.Get("reserve_in"))
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	reserveOut, err := parseAmount("reserve_out", q.Get("reserve_out"))
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	return &svcdto.AmountOutRequest{
		AmountIn:   amountIn,
		ReserveIn:  reserveIn,
		ReserveOut: reserveOut,
	}, 0, nil
}

func parseAddr(name, s string) (common.Address, error) {
	if s == "" {
		return common.Address{}, errors.Errorf("missing %s", name)
	}
	if !common.IsHexAddress(s) {
		return common.Address{}, errors.Errorf("bad %s address format", name)
	}
	return common.HexToAddress(s), nil
}

// parseAmount accepts a positive decimal string.
func parseAmount(name, s string) (*big.Int, error) {
	if s == "" {
		return nil, errors.Errorf("missing %s", name)
	}
	a, ok := new(big.Int).SetString(s, 10)
	if !ok || a.Sign() <= 0 {
		return nil, errors.Errorf("bad %s", name)
	}
	return a, nil
}

// parseOptionalAmount accepts a non-negative decimal string, defaulting to
// zero when absent.
func parseOptionalAmount(name, s string) (*big.Int, error) {
	if s == "" {
		return big.NewInt(0), nil
	}
	a, ok := new(big.Int).SetString(s, 10)
	if !ok || a.Sign() < 0 {
		return nil, errors.Errorf("bad %s", name)
	}
	return a, nil
}

func parseDeadline(unix int64) (time.Time, error) {
	if unix <= 0 {
		return time.Time{}, errors.New("missing deadline")
	}
	return time.Unix(unix, 0), nil
}
