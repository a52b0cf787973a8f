package dto

// AddLiquidityRequest is the wire form of a deposit request. Amounts are
// decimal strings in the asset's smallest unit; the deadline is unix seconds.
type AddLiquidityRequest struct {
	Sender         string `json:"sender"`
	AssetA         string `json:"asset_a"`
	AssetB         string `json:"asset_b"`
	AmountADesired string `json:"amount_a_desired"`
	AmountBDesired string `json:"amount_b_desired"`
	AmountAMin     string `json:"amount_a_min"`
	AmountBMin     string `json:"amount_b_min"`
	Recipient      string `json:"recipient"`
	Deadline       int64  `json:"deadline"`
}

// AddLiquidityResponse is the wire form of a deposit result.
type AddLiquidityResponse struct {
	AmountA string `json:"amount_a"`
	AmountB string `json:"amount_b"`
	Shares  string `json:"shares"`
}

// RemoveLiquidityRequest is the wire form of a withdrawal request.
type RemoveLiquidityRequest struct {
	Sender     string `json:"sender"`
	AssetA     string `json:"asset_a"`
	AssetB     string `json:"asset_b"`
	Shares     string `json:"shares"`
	AmountAMin string `json:"amount_a_min"`
	AmountBMin string `json:"amount_b_min"`
	Recipient  string `json:"recipient"`
	Deadline   int64  `json:"deadline"`
}

// RemoveLiquidityResponse is the wire form of a withdrawal result.
type RemoveLiquidityResponse struct {
	AmountA string `json:"amount_a"`
	AmountB string `json:"amount_b"`
}

// SwapRequest is the wire form of an exact-input swap request.
type SwapRequest struct {
	Sender       string   `json:"sender"`
	AmountIn     string   `json:"amount_in"`
	AmountOutMin string   `json:"amount_out_min"`
	Path         []string `json:"path"`
	Recipient    string   `json:"recipient"`
	Deadline     int64    `json:"deadline"`
}

// SwapResponse is the wire form of a swap result.
type SwapResponse struct {
	AmountIn  string `json:"amount_in"`
	AmountOut string `json:"amount_out"`
}
