package wayforpay

// PaymentURL is the fixed gateway endpoint the signed purchase form is
// auto-submitted to.
const PaymentURL = "https://secure.wayforpay.com/pay"

// Transaction statuses delivered in gateway callbacks.
const (
	StatusApproved     = "Approved"
	StatusDeclined     = "Declined"
	StatusRefunded     = "Refunded"
	StatusExpired      = "Expired"
	StatusInProcessing = "InProcessing"
)

// PurchaseRequest is the signed payment-initiation payload returned to the
// client for auto-submission as a form to PaymentURL. Field names match the
// gateway protocol exactly.
type PurchaseRequest struct {
	MerchantAccount    string   `json:"merchantAccount"`
	MerchantDomainName string   `json:"merchantDomainName"`
	MerchantSignature  string   `json:"merchantSignature"`
	OrderReference     string   `json:"orderReference"`
	OrderDate          int64    `json:"orderDate"`
	Amount             int      `json:"amount"`
	Currency           string   `json:"currency"`
	ProductName        []string `json:"productName"`
	ProductPrice       []int    `json:"productPrice"`
	ProductCount       []int    `json:"productCount"`
	ReturnURL          string   `json:"returnUrl"`
	ApprovedURL        string   `json:"approvedUrl"`
	DeclinedURL        string   `json:"declinedUrl"`
	ServiceURL         string   `json:"serviceUrl"`
	Language           string   `json:"language"`
}

// CallbackPayload is the asynchronous payment notification the gateway
// POSTs to the service URL. It is untrusted until Signer.VerifyCallback
// succeeds; the binding tags cover the structural phase that must pass
// before any signature work.
type CallbackPayload struct {
	MerchantAccount   string   `json:"merchantAccount" binding:"required"`
	OrderReference    string   `json:"orderReference" binding:"required"`
	MerchantSignature string   `json:"merchantSignature" binding:"required"`
	Amount            *float64 `json:"amount" binding:"required"`
	Currency          string   `json:"currency" binding:"required"`
	AuthCode          string   `json:"authCode"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	CreatedDate       int64    `json:"createdDate"`
	ProcessingDate    int64    `json:"processingDate"`
	CardPan           string   `json:"cardPan" binding:"required"`
	CardType          string   `json:"cardType"`
	IssuerBankCountry string   `json:"issuerBankCountry"`
	IssuerBankName    string   `json:"issuerBankName"`
	RecToken          string   `json:"recToken"`
	TransactionStatus string   `json:"transactionStatus" binding:"required"`
	Reason            string   `json:"reason"`
	ReasonCode        int      `json:"reasonCode"`
	Fee               float64  `json:"fee"`
	PaymentSystem     string   `json:"paymentSystem"`
}

// AmountValue returns the callback amount, zero when the field was absent.
// Amount is a pointer so required-binding distinguishes a genuine zero
// amount from a missing field.
func (cb *CallbackPayload) AmountValue() float64 {
	if cb.Amount == nil {
		return 0
	}
	return *cb.Amount
}

// Float64 returns a pointer to the given value.
func Float64(v float64) *float64 {
	return &v
}

// ResponseAck tells the gateway the callback was processed and terminates
// the exchange. Without it the gateway re-delivers the callback.
type ResponseAck struct {
	OrderReference string `json:"orderReference"`
	Status         string `json:"status"`
	Time           int64  `json:"time"`
	Signature      string `json:"signature"`
}
