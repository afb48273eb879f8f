package barte

import "encoding/json"

// PaymentMethod identifies how a charge is settled.
type PaymentMethod string

const (
	PaymentMethodPix                   PaymentMethod = "PIX"
	PaymentMethodCreditCard            PaymentMethod = "CREDIT_CARD"
	PaymentMethodCreditCardEarlySeller PaymentMethod = "CREDIT_CARD_EARLY_SELLER"
	PaymentMethodBankSlip              PaymentMethod = "BANK_SLIP"
)

// IsPix returns true for the PIX instant-payment method.
func (m PaymentMethod) IsPix() bool {
	return m == PaymentMethodPix
}

// ChargeStatus is the server-authoritative lifecycle state of a charge.
// The client never moves a charge between states locally; it only
// re-fetches.
type ChargeStatus string

const (
	ChargeStatusScheduled ChargeStatus = "SCHEDULED"
	ChargeStatusPaid      ChargeStatus = "PAID"
	ChargeStatusCanceled  ChargeStatus = "CANCELED"
	ChargeStatusRefunded  ChargeStatus = "REFUNDED"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusScheduled OrderStatus = "SCHEDULED"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusCanceled  OrderStatus = "CANCELED"
)

// DocumentType identifies the kind of tax document of a customer.
type DocumentType string

const (
	DocumentTypeCPF  DocumentType = "CPF"
	DocumentTypeCNPJ DocumentType = "CNPJ"
)

// ==================== Customers and Buyers ====================

// Customer is the customer snapshot embedded in charges and orders.
type Customer struct {
	UUID             Optional[string] `json:"uuid"`
	Document         string           `json:"document"`
	Type             DocumentType     `json:"type"`
	DocumentCountry  Optional[string] `json:"documentCountry"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	AlternativeEmail Optional[string] `json:"alternativeEmail"`
}

// UnmarshalJSON decodes a customer snapshot, requiring the
// identification fields the API always sends.
func (cu *Customer) UnmarshalJSON(data []byte) error {
	d, err := newObjectDecoder("Customer", data)
	if err != nil {
		return err
	}
	uuid, err := d.optionalString("uuid")
	if err != nil {
		return err
	}
	document, err := d.stringField("document")
	if err != nil {
		return err
	}
	docType, err := d.stringField("type")
	if err != nil {
		return err
	}
	country, err := d.optionalString("documentCountry")
	if err != nil {
		return err
	}
	name, err := d.stringField("name")
	if err != nil {
		return err
	}
	email, err := d.stringField("email")
	if err != nil {
		return err
	}
	phone, err := d.stringField("phone")
	if err != nil {
		return err
	}
	altEmail, err := d.optionalString("alternativeEmail")
	if err != nil {
		return err
	}
	*cu = Customer{
		UUID:             uuid,
		Document:         document,
		Type:             DocumentType(docType),
		DocumentCountry:  country,
		Name:             name,
		Email:            email,
		Phone:            phone,
		AlternativeEmail: altEmail,
	}
	return nil
}

// MarshalJSON re-encodes the snapshot in its wire shape, omitting
// absent optional fields so the three optional states survive a store
// and re-decode.
func (cu Customer) MarshalJSON() ([]byte, error) {
	type customerWire struct {
		UUID             json.RawMessage `json:"uuid,omitempty"`
		Document         string          `json:"document"`
		Type             DocumentType    `json:"type"`
		DocumentCountry  json.RawMessage `json:"documentCountry,omitempty"`
		Name             string          `json:"name"`
		Email            string          `json:"email"`
		Phone            string          `json:"phone"`
		AlternativeEmail json.RawMessage `json:"alternativeEmail,omitempty"`
	}
	w := customerWire{
		Document: cu.Document,
		Type:     cu.Type,
		Name:     cu.Name,
		Email:    cu.Email,
		Phone:    cu.Phone,
	}
	var err error
	if w.UUID, err = cu.UUID.wire(); err != nil {
		return nil, err
	}
	if w.DocumentCountry, err = cu.DocumentCountry.wire(); err != nil {
		return nil, err
	}
	if w.AlternativeEmail, err = cu.AlternativeEmail.wire(); err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

// Buyer is a registered buyer that card tokens and orders can refer to
// by uuid.
type Buyer struct {
	UUID             string           `json:"uuid"`
	Document         string           `json:"document"`
	Name             string           `json:"name"`
	CountryCode      Optional[string] `json:"countryCode"`
	Phone            string           `json:"phone"`
	Email            string           `json:"email"`
	AlternativeEmail Optional[string] `json:"alternativeEmail"`
}

// UnmarshalJSON decodes a buyer record.
func (b *Buyer) UnmarshalJSON(data []byte) error {
	d, err := newObjectDecoder("Buyer", data)
	if err != nil {
		return err
	}
	uuid, err := d.stringField("uuid")
	if err != nil {
		return err
	}
	document, err := d.stringField("document")
	if err != nil {
		return err
	}
	name, err := d.stringField("name")
	if err != nil {
		return err
	}
	countryCode, err := d.optionalString("countryCode")
	if err != nil {
		return err
	}
	phone, err := d.stringField("phone")
	if err != nil {
		return err
	}
	email, err := d.stringField("email")
	if err != nil {
		return err
	}
	altEmail, err := d.optionalString("alternativeEmail")
	if err != nil {
		return err
	}
	*b = Buyer{
		UUID:             uuid,
		Document:         document,
		Name:             name,
		CountryCode:      countryCode,
		Phone:            phone,
		Email:            email,
		AlternativeEmail: altEmail,
	}
	return nil
}

// MarshalJSON re-encodes the buyer in its wire shape, omitting absent
// optional fields.
func (b Buyer) MarshalJSON() ([]byte, error) {
	type buyerWire struct {
		UUID             string          `json:"uuid"`
		Document         string          `json:"document"`
		Name             string          `json:"name"`
		CountryCode      json.RawMessage `json:"countryCode,omitempty"`
		Phone            string          `json:"phone"`
		Email            string          `json:"email"`
		AlternativeEmail json.RawMessage `json:"alternativeEmail,omitempty"`
	}
	w := buyerWire{
		UUID:     b.UUID,
		Document: b.Document,
		Name:     b.Name,
		Phone:    b.Phone,
		Email:    b.Email,
	}
	var err error
	if w.CountryCode, err = b.CountryCode.wire(); err != nil {
		return nil, err
	}
	if w.AlternativeEmail, err = b.AlternativeEmail.wire(); err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

// ==================== Charges ====================

// ChargePix holds the PIX-specific fields of a charge.
type ChargePix struct {
	Code        string `json:"pixCode"`
	QRCodeImage string `json:"pixQRCodeImage"`
}

// Charge represents a single payment attempt against a customer. The
// Pix field is non-nil exactly when PaymentMethod is PIX.
type Charge struct {
	UUID              string             `json:"uuid"`
	Title             string             `json:"title"`
	ExpirationDate    DateTime           `json:"expirationDate"`
	Value             float64            `json:"value"`
	PaymentMethod     PaymentMethod      `json:"paymentMethod"`
	Status            ChargeStatus       `json:"status"`
	Customer          Customer           `json:"customer"`
	PaidDate          Optional[DateTime] `json:"paidDate"`
	AuthorizationCode Optional[string]   `json:"authorizationCode"`
	AuthorizationNSU  Optional[string]   `json:"authorizationNsu"`
	Installments      Optional[int]      `json:"installments"`
	InstallmentAmount Optional[float64]  `json:"installmentAmount"`

	// Pix travels flat on the wire as pixCode and pixQRCodeImage.
	Pix *ChargePix

	api chargeAPI
}

// UnmarshalJSON decodes a charge. The PIX variant is selected on the
// paymentMethod discriminant: when it is PIX, pixCode and
// pixQRCodeImage become required.
func (ch *Charge) UnmarshalJSON(data []byte) error {
	return ch.decode("Charge", data)
}

// decode lets Refund reuse the charge shape under its own entity name.
func (ch *Charge) decode(entity string, data []byte) error {
	d, err := newObjectDecoder(entity, data)
	if err != nil {
		return err
	}
	uuid, err := d.stringField("uuid")
	if err != nil {
		return err
	}
	title, err := d.stringField("title")
	if err != nil {
		return err
	}
	expiration, err := d.dateTimeField("expirationDate")
	if err != nil {
		return err
	}
	value, err := d.floatField("value")
	if err != nil {
		return err
	}
	method, err := d.stringField("paymentMethod")
	if err != nil {
		return err
	}
	status, err := d.stringField("status")
	if err != nil {
		return err
	}
	rawCustomer, err := d.rawField("customer")
	if err != nil {
		return err
	}
	var customer Customer
	if err := json.Unmarshal(rawCustomer, &customer); err != nil {
		return d.nested("customer", "an object", err)
	}
	paidDate, err := d.optionalDateTime("paidDate")
	if err != nil {
		return err
	}
	authCode, err := d.optionalString("authorizationCode")
	if err != nil {
		return err
	}
	authNSU, err := d.optionalString("authorizationNsu")
	if err != nil {
		return err
	}
	installments, err := d.optionalInt("installments")
	if err != nil {
		return err
	}
	installmentAmount, err := d.optionalFloat("installmentAmount")
	if err != nil {
		return err
	}

	var pix *ChargePix
	if PaymentMethod(method).IsPix() {
		code, err := d.stringField("pixCode")
		if err != nil {
			return err
		}
		image, err := d.stringField("pixQRCodeImage")
		if err != nil {
			return err
		}
		pix = &ChargePix{Code: code, QRCodeImage: image}
	}

	*ch = Charge{
		UUID:              uuid,
		Title:             title,
		ExpirationDate:    expiration,
		Value:             value,
		PaymentMethod:     PaymentMethod(method),
		Status:            ChargeStatus(status),
		Customer:          customer,
		PaidDate:          paidDate,
		AuthorizationCode: authCode,
		AuthorizationNSU:  authNSU,
		Installments:      installments,
		InstallmentAmount: installmentAmount,
		Pix:               pix,
	}
	return nil
}

// MarshalJSON renders the charge in the wire shape UnmarshalJSON
// accepts, with the PIX fields flat at the top level and absent
// optionals omitted, so a stored charge decodes back unchanged.
func (ch Charge) MarshalJSON() ([]byte, error) {
	type chargeWire struct {
		UUID              string          `json:"uuid"`
		Title             string          `json:"title"`
		ExpirationDate    DateTime        `json:"expirationDate"`
		Value             float64         `json:"value"`
		PaymentMethod     PaymentMethod   `json:"paymentMethod"`
		Status            ChargeStatus    `json:"status"`
		Customer          Customer        `json:"customer"`
		PaidDate          json.RawMessage `json:"paidDate,omitempty"`
		AuthorizationCode json.RawMessage `json:"authorizationCode,omitempty"`
		AuthorizationNSU  json.RawMessage `json:"authorizationNsu,omitempty"`
		Installments      json.RawMessage `json:"installments,omitempty"`
		InstallmentAmount json.RawMessage `json:"installmentAmount,omitempty"`
		PixCode           string          `json:"pixCode,omitempty"`
		PixQRCodeImage    string          `json:"pixQRCodeImage,omitempty"`
	}
	w := chargeWire{
		UUID:           ch.UUID,
		Title:          ch.Title,
		ExpirationDate: ch.ExpirationDate,
		Value:          ch.Value,
		PaymentMethod:  ch.PaymentMethod,
		Status:         ch.Status,
		Customer:       ch.Customer,
	}
	var err error
	if w.PaidDate, err = ch.PaidDate.wire(); err != nil {
		return nil, err
	}
	if w.AuthorizationCode, err = ch.AuthorizationCode.wire(); err != nil {
		return nil, err
	}
	if w.AuthorizationNSU, err = ch.AuthorizationNSU.wire(); err != nil {
		return nil, err
	}
	if w.Installments, err = ch.Installments.wire(); err != nil {
		return nil, err
	}
	if w.InstallmentAmount, err = ch.InstallmentAmount.wire(); err != nil {
		return nil, err
	}
	if ch.Pix != nil {
		w.PixCode = ch.Pix.Code
		w.PixQRCodeImage = ch.Pix.QRCodeImage
	}
	return json.Marshal(w)
}

// Refund is the record returned by refund operations. The API answers
// them with the charge shape, so Refund embeds Charge.
type Refund struct {
	Charge
}

// UnmarshalJSON decodes a refund using the charge shape.
func (r *Refund) UnmarshalJSON(data []byte) error {
	return r.Charge.decode("Refund", data)
}

// PixQRCode carries the QR code data of a PIX charge. CopyAndPaste is
// the same payload as QRCode, under the name Brazilian checkouts
// usually show to the payer.
type PixQRCode struct {
	QRCode       string `json:"qrCode"`
	QRCodeImage  string `json:"qrCodeImage"`
	CopyAndPaste string `json:"copyAndPaste"`
}

// ==================== Orders ====================

// Order is a billing intent that fans out to one or more charges.
type Order struct {
	UUID           string      `json:"uuid"`
	Status         OrderStatus `json:"status"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Value          float64     `json:"value"`
	Installments   int         `json:"installments"`
	StartDate      DateTime    `json:"startDate"`
	Payment        string      `json:"payment"`
	Customer       Customer    `json:"customer"`
	IdempotencyKey string      `json:"idempotencyKey"`
	Charges        []Charge    `json:"charges"`

	api chargeAPI
}

// UnmarshalJSON decodes an order and its nested charges.
func (o *Order) UnmarshalJSON(data []byte) error {
	d, err := newObjectDecoder("Order", data)
	if err != nil {
		return err
	}
	uuid, err := d.stringField("uuid")
	if err != nil {
		return err
	}
	status, err := d.stringField("status")
	if err != nil {
		return err
	}
	title, err := d.stringField("title")
	if err != nil {
		return err
	}
	description, err := d.stringField("description")
	if err != nil {
		return err
	}
	value, err := d.floatField("value")
	if err != nil {
		return err
	}
	installments, err := d.intField("installments")
	if err != nil {
		return err
	}
	startDate, err := d.dateTimeField("startDate")
	if err != nil {
		return err
	}
	payment, err := d.stringField("payment")
	if err != nil {
		return err
	}
	rawCustomer, err := d.rawField("customer")
	if err != nil {
		return err
	}
	var customer Customer
	if err := json.Unmarshal(rawCustomer, &customer); err != nil {
		return d.nested("customer", "an object", err)
	}
	idempotencyKey, err := d.stringField("idempotencyKey")
	if err != nil {
		return err
	}
	rawCharges, err := d.rawField("charges")
	if err != nil {
		return err
	}
	var charges []Charge
	if err := json.Unmarshal(rawCharges, &charges); err != nil {
		return d.nested("charges", "an array", err)
	}
	*o = Order{
		UUID:           uuid,
		Status:         OrderStatus(status),
		Title:          title,
		Description:    description,
		Value:          value,
		Installments:   installments,
		StartDate:      startDate,
		Payment:        payment,
		Customer:       customer,
		IdempotencyKey: idempotencyKey,
		Charges:        charges,
	}
	return nil
}

// ==================== Card Tokens ====================

// CardToken is a tokenized credit card. Created by CreateCardToken and
// read-only afterwards.
type CardToken struct {
	UUID            string   `json:"uuid"`
	Status          string   `json:"status"`
	CreatedAt       DateTime `json:"createdAt"`
	Brand           string   `json:"brand"`
	CardHolderName  string   `json:"cardHolderName"`
	CVVChecked      bool     `json:"cvvChecked"`
	Fingerprint     string   `json:"fingerprint"`
	First6Digits    string   `json:"first6digits"`
	Last4Digits     string   `json:"last4digits"`
	BuyerID         string   `json:"buyerId"`
	ExpirationMonth string   `json:"expirationMonth"`
	ExpirationYear  string   `json:"expirationYear"`
	CardID          string   `json:"cardId"`
}

// UnmarshalJSON decodes a card token record.
func (t *CardToken) UnmarshalJSON(data []byte) error {
	d, err := newObjectDecoder("CardToken", data)
	if err != nil {
		return err
	}
	uuid, err := d.stringField("uuid")
	if err != nil {
		return err
	}
	status, err := d.stringField("status")
	if err != nil {
		return err
	}
	createdAt, err := d.dateTimeField("createdAt")
	if err != nil {
		return err
	}
	brand, err := d.stringField("brand")
	if err != nil {
		return err
	}
	holderName, err := d.stringField("cardHolderName")
	if err != nil {
		return err
	}
	cvvChecked, err := d.boolField("cvvChecked")
	if err != nil {
		return err
	}
	fingerprint, err := d.stringField("fingerprint")
	if err != nil {
		return err
	}
	first6, err := d.stringField("first6digits")
	if err != nil {
		return err
	}
	last4, err := d.stringField("last4digits")
	if err != nil {
		return err
	}
	buyerID, err := d.stringField("buyerId")
	if err != nil {
		return err
	}
	expMonth, err := d.stringField("expirationMonth")
	if err != nil {
		return err
	}
	expYear, err := d.stringField("expirationYear")
	if err != nil {
		return err
	}
	cardID, err := d.stringField("cardId")
	if err != nil {
		return err
	}
	*t = CardToken{
		UUID:            uuid,
		Status:          status,
		CreatedAt:       createdAt,
		Brand:           brand,
		CardHolderName:  holderName,
		CVVChecked:      cvvChecked,
		Fingerprint:     fingerprint,
		First6Digits:    first6,
		Last4Digits:     last4,
		BuyerID:         buyerID,
		ExpirationMonth: expMonth,
		ExpirationYear:  expYear,
		CardID:          cardID,
	}
	return nil
}

// ==================== Installments ====================

// InstallmentSimulation is one row of an installment simulation.
type InstallmentSimulation struct {
	Installments int     `json:"installments"`
	Amount       float64 `json:"amount"`
	Total        float64 `json:"total"`
	InterestRate float64 `json:"interest_rate"`
}

// UnmarshalJSON decodes a simulation row.
func (s *InstallmentSimulation) UnmarshalJSON(data []byte) error {
	d, err := newObjectDecoder("InstallmentSimulation", data)
	if err != nil {
		return err
	}
	installments, err := d.intField("installments")
	if err != nil {
		return err
	}
	amount, err := d.floatField("amount")
	if err != nil {
		return err
	}
	total, err := d.floatField("total")
	if err != nil {
		return err
	}
	interestRate, err := d.floatField("interest_rate")
	if err != nil {
		return err
	}
	*s = InstallmentSimulation{
		Installments: installments,
		Amount:       amount,
		Total:        total,
		InterestRate: interestRate,
	}
	return nil
}

// InstallmentOptions is the full result of an installment simulation.
type InstallmentOptions struct {
	Installments []InstallmentSimulation `json:"installments"`
}

// UnmarshalJSON decodes the simulation result.
func (o *InstallmentOptions) UnmarshalJSON(data []byte) error {
	d, err := newObjectDecoder("InstallmentOptions", data)
	if err != nil {
		return err
	}
	raw, err := d.rawField("installments")
	if err != nil {
		return err
	}
	var sims []InstallmentSimulation
	if err := json.Unmarshal(raw, &sims); err != nil {
		return d.nested("installments", "an array", err)
	}
	*o = InstallmentOptions{Installments: sims}
	return nil
}

// ==================== Pagination ====================

// PageSort describes the sort state reported by list endpoints.
type PageSort struct {
	Sorted   bool `json:"sorted"`
	Unsorted bool `json:"unsorted"`
	Empty    bool `json:"empty"`
}

// UnmarshalJSON decodes the sort descriptor.
func (s *PageSort) UnmarshalJSON(data []byte) error {
	d, err := newObjectDecoder("PageSort", data)
	if err != nil {
		return err
	}
	sorted, err := d.boolField("sorted")
	if err != nil {
		return err
	}
	unsorted, err := d.boolField("unsorted")
	if err != nil {
		return err
	}
	empty, err := d.boolField("empty")
	if err != nil {
		return err
	}
	*s = PageSort{Sorted: sorted, Unsorted: unsorted, Empty: empty}
	return nil
}

// PageInfo carries the pagination metadata shared by list responses.
type PageInfo struct {
	PageNumber    int      `json:"pageNumber"`
	PageSize      int      `json:"pageSize"`
	TotalElements int      `json:"totalElements"`
	TotalPages    int      `json:"totalPages"`
	First         bool     `json:"first"`
	Last          bool     `json:"last"`
	Empty         bool     `json:"empty"`
	Sort          PageSort `json:"sort"`
}

// decodePageInfo reads the shared pagination metadata out of a list
// response object.
func decodePageInfo(d *objectDecoder) (PageInfo, error) {
	pageNumber, err := d.intField("pageNumber")
	if err != nil {
		return PageInfo{}, err
	}
	pageSize, err := d.intField("pageSize")
	if err != nil {
		return PageInfo{}, err
	}
	totalElements, err := d.intField("totalElements")
	if err != nil {
		return PageInfo{}, err
	}
	totalPages, err := d.intField("totalPages")
	if err != nil {
		return PageInfo{}, err
	}
	first, err := d.boolField("first")
	if err != nil {
		return PageInfo{}, err
	}
	last, err := d.boolField("last")
	if err != nil {
		return PageInfo{}, err
	}
	empty, err := d.boolField("empty")
	if err != nil {
		return PageInfo{}, err
	}
	rawSort, err := d.rawField("sort")
	if err != nil {
		return PageInfo{}, err
	}
	var sort PageSort
	if err := json.Unmarshal(rawSort, &sort); err != nil {
		return PageInfo{}, d.nested("sort", "an object", err)
	}
	return PageInfo{
		PageNumber:    pageNumber,
		PageSize:      pageSize,
		TotalElements: totalElements,
		TotalPages:    totalPages,
		First:         first,
		Last:          last,
		Empty:         empty,
		Sort:          sort,
	}, nil
}

// ChargeList is one page of charges.
type ChargeList struct {
	Content []Charge `json:"content"`
	PageInfo
}

// UnmarshalJSON decodes a charge page. The page either fully decodes or
// the whole call fails; there are no partial pages.
func (l *ChargeList) UnmarshalJSON(data []byte) error {
	d, err := newObjectDecoder("ChargeList", data)
	if err != nil {
		return err
	}
	page, err := decodePageInfo(d)
	if err != nil {
		return err
	}
	raw, err := d.rawField("content")
	if err != nil {
		return err
	}
	var content []Charge
	if err := json.Unmarshal(raw, &content); err != nil {
		return d.nested("content", "an array", err)
	}
	*l = ChargeList{Content: content, PageInfo: page}
	return nil
}

// BuyerList is one page of buyers.
type BuyerList struct {
	Content []Buyer `json:"content"`
	PageInfo
}

// UnmarshalJSON decodes a buyer page.
func (l *BuyerList) UnmarshalJSON(data []byte) error {
	d, err := newObjectDecoder("BuyerList", data)
	if err != nil {
		return err
	}
	page, err := decodePageInfo(d)
	if err != nil {
		return err
	}
	raw, err := d.rawField("content")
	if err != nil {
		return err
	}
	var content []Buyer
	if err := json.Unmarshal(raw, &content); err != nil {
		return d.nested("content", "an array", err)
	}
	*l = BuyerList{Content: content, PageInfo: page}
	return nil
}

// ==================== Request Types ====================

// CustomerRequest is the customer payload sent on creation requests.
type CustomerRequest struct {
	UUID             string       `json:"uuid,omitempty"`
	Document         string       `json:"document,omitempty"`
	Type             DocumentType `json:"type,omitempty"`
	DocumentCountry  string       `json:"documentCountry,omitempty"`
	Name             string       `json:"name,omitempty"`
	Email            string       `json:"email,omitempty"`
	Phone            string       `json:"phone,omitempty"`
	AlternativeEmail string       `json:"alternativeEmail,omitempty"`
}

// InternationalDocument identifies the payer document inside fraud
// screening data.
type InternationalDocument struct {
	DocumentNumber string `json:"documentNumber"`
	DocumentType   string `json:"documentType"`
	DocumentNation string `json:"documentNation"`
}

// BillingAddress is the payer billing address used for fraud screening.
type BillingAddress struct {
	Country    string `json:"country"`
	State      string `json:"state"`
	City       string `json:"city"`
	District   string `json:"district"`
	Street     string `json:"street"`
	ZipCode    string `json:"zipCode"`
	Number     string `json:"number"`
	Complement string `json:"complement,omitempty"`
}

// FraudData carries the anti-fraud payload attached to card payments.
type FraudData struct {
	InternationalDocument *InternationalDocument `json:"internationalDocument,omitempty"`
	Name                  string                 `json:"name,omitempty"`
	Email                 string                 `json:"email,omitempty"`
	Phone                 string                 `json:"phone,omitempty"`
	BillingAddress        *BillingAddress        `json:"billingAddress,omitempty"`
}

// OrderCard references a stored card token on an order payment.
type OrderCard struct {
	CardToken string `json:"cardToken"`
}

// OrderPayment describes how an order is to be paid.
type OrderPayment struct {
	Method    PaymentMethod `json:"method"`
	Card      *OrderCard    `json:"card,omitempty"`
	Brand     string        `json:"brand,omitempty"`
	FraudData *FraudData    `json:"fraudData,omitempty"`
}

// CreateOrderRequest is the payload for CreateOrder. IdempotencyKey is
// forwarded as attemptReference; the server uses it to deduplicate
// retried submissions.
type CreateOrderRequest struct {
	Title          string           `json:"title"`
	Description    string           `json:"description,omitempty"`
	Value          float64          `json:"value"`
	Installments   int              `json:"installments"`
	StartDate      string           `json:"startDate"` // YYYY-MM-DD
	IdempotencyKey string           `json:"attemptReference"`
	Payment        OrderPayment     `json:"payment"`
	BuyerUUID      string           `json:"uuidBuyer,omitempty"`
	Customer       *CustomerRequest `json:"customer,omitempty"`
}

// CreateChargeRequest is the payload for the charge creation calls.
type CreateChargeRequest struct {
	Title          string           `json:"title,omitempty"`
	Description    string           `json:"description,omitempty"`
	Value          float64          `json:"value"`
	ExpirationDate string           `json:"expirationDate,omitempty"` // YYYY-MM-DD
	PaymentMethod  PaymentMethod    `json:"paymentMethod,omitempty"`
	CardToken      string           `json:"cardToken,omitempty"`
	Installments   int              `json:"installments,omitempty"`
	Customer       *CustomerRequest `json:"customer,omitempty"`
}

// CreateBuyerRequest is the payload for CreateBuyer.
type CreateBuyerRequest struct {
	Document         string       `json:"document"`
	Type             DocumentType `json:"type,omitempty"`
	Name             string       `json:"name"`
	Email            string       `json:"email"`
	Phone            string       `json:"phone,omitempty"`
	CountryCode      string       `json:"countryCode,omitempty"`
	AlternativeEmail string       `json:"alternativeEmail,omitempty"`
}

// CreateCardTokenRequest is the payload for CreateCardToken. Field
// names follow the tokenization endpoint, which still takes snake_case
// keys.
type CreateCardTokenRequest struct {
	Number          string `json:"number"`
	HolderName      string `json:"holder_name"`
	ExpirationMonth int    `json:"expiration_month"`
	ExpirationYear  int    `json:"expiration_year"`
	CVV             string `json:"cvv"`
}

// RefundOptions tunes a refund request. The zero value requests a
// regular refund with asFraud false.
type RefundOptions struct {
	AsFraud bool
}

// ListChargesParams filters a charge listing. The zero value (or a nil
// pointer) asks for the unfiltered first page.
type ListChargesParams struct {
	Page             int
	Size             int
	CustomerDocument string
	Status           ChargeStatus
	PaymentMethod    PaymentMethod
}

// ListBuyersParams filters a buyer listing. The zero value (or a nil
// pointer) asks for the unfiltered first page.
type ListBuyersParams struct {
	Page     int
	Size     int
	Document string
	Name     string
}

// SimulateInstallmentsParams configures an installment simulation.
// Amount is required; at least one of Brand or MaxInstallments must be
// set so the server knows which table to price against.
type SimulateInstallmentsParams struct {
	Amount          float64
	Brand           string
	MaxInstallments int
}
