package domain

// NormalizedRecord is one parsed B2C transaction line. Aggregated source sheets only populate
// PlaceOfSupply, Rate, TaxableValue and Portal.
type NormalizedRecord struct {
	InvoiceDate   string  `json:"invoice_date,omitempty"`
	InvoiceNo     string  `json:"invoice_no,omitempty"`
	HSNCode       string  `json:"hsn_code,omitempty"`
	ProductName   string  `json:"product_name,omitempty"`
	Quantity      float64 `json:"quantity,omitempty"`
	TaxableValue  float64 `json:"taxable_value"`
	CGSTRate      float64 `json:"cgst_rate,omitempty"`
	SGSTRate      float64 `json:"sgst_rate,omitempty"`
	IGSTRate      float64 `json:"igst_rate,omitempty"`
	CGSTAmount    float64 `json:"cgst_amount,omitempty"`
	SGSTAmount    float64 `json:"sgst_amount,omitempty"`
	IGSTAmount    float64 `json:"igst_amount,omitempty"`
	TotalAmount   float64 `json:"total_amount,omitempty"`
	PlaceOfSupply string  `json:"place_of_supply"`
	// Rate is set only when the source sheet carries an explicit integer-percent rate.
	Rate   *int   `json:"rate,omitempty"`
	Portal string `json:"portal"`
}

// HasInvoiceDetail reports whether the record came from a per-invoice source row.
func (r *NormalizedRecord) HasInvoiceDetail() bool {
	return r.InvoiceDate != ""
}

// AggregatedSummaryRow is one (state, rate) bucket of the B2CS summary.
type AggregatedSummaryRow struct {
	Type           string  `json:"type"`
	StateCode      string  `json:"state_code"`
	StateName      string  `json:"state_name"`
	Rate           int     `json:"rate"`
	ApplicableRate string  `json:"applicable_tax_rate"`
	TaxableValue   float64 `json:"taxable_value"`
	CessAmount     string  `json:"cess_amount"`
	ECommerceGSTIN string  `json:"ecommerce_gstin"`
}

// PlaceOfSupply returns the composite "<code>-<name>" form used by the filing portal.
func (r *AggregatedSummaryRow) PlaceOfSupply() string {
	return r.StateCode + "-" + r.StateName
}

// B2BRecord is one counter-party invoice line for B2B reporting.
type B2BRecord struct {
	BuyerGSTIN        string  `json:"buyer_gstin"`
	BuyerName         string  `json:"buyer_name"`
	InvoiceNo         string  `json:"invoice_no"`
	InvoiceDate       string  `json:"invoice_date"`
	InvoiceValue      float64 `json:"invoice_value"`
	PlaceOfSupply     string  `json:"place_of_supply"`
	StateCode         string  `json:"state_code"`
	ReverseCharge     string  `json:"reverse_charge"`
	ApplicableTaxRate string  `json:"applicable_tax_rate"`
	InvoiceType       string  `json:"invoice_type"`
	ECommerceGSTIN    string  `json:"ecommerce_gstin"`
	Rate              int     `json:"rate"`
	TaxableValue      float64 `json:"taxable_value"`
	CessAmount        float64 `json:"cess_amount"`
}

// ParsedFileResult is the outcome of ingesting one uploaded file.
type ParsedFileResult struct {
	Filename        string             `json:"filename"`
	Portal          string             `json:"portal"`
	RowsProcessed   int                `json:"rows_processed"`
	Records         []NormalizedRecord `json:"records"`
	Preview         []NormalizedRecord `json:"data"`
	GSTIN           *string            `json:"gstin"`
	ReportFrequency ReportFrequency    `json:"report_frequency"`
	Diagnostics     []string           `json:"debug_info"`
}
