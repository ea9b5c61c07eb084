package model

import "time"

const (
	StatusPending    = "pending"
	StatusEmProducao = "em_producao"
	StatusACaminho   = "a_caminho"
	StatusEntregue   = "entregue"
	StatusCancelado  = "cancelado"
	StatusFinalizado = "finalizado"
)

// KanbanStatuses define a ordem fixa das colunas do quadro.
var KanbanStatuses = []string{
	StatusPending,
	StatusEmProducao,
	StatusACaminho,
	StatusEntregue,
	StatusCancelado,
	StatusFinalizado,
}

// OpenStatuses são os status elegíveis para escalonamento de prioridade.
var OpenStatuses = []string{StatusPending, StatusEmProducao, StatusACaminho}

// statusTransitions é a tabela de transições permitidas. O banco aceita
// qualquer valor; a legalidade é imposta aqui, na borda do ciclo de vida.
var statusTransitions = map[string][]string{
	StatusPending:    {StatusEmProducao, StatusACaminho, StatusEntregue, StatusCancelado, StatusFinalizado},
	StatusEmProducao: {StatusACaminho, StatusEntregue, StatusCancelado, StatusFinalizado},
	StatusACaminho:   {StatusEntregue, StatusCancelado, StatusFinalizado},
	StatusEntregue:   {StatusCancelado, StatusFinalizado},
	StatusCancelado:  {},
	StatusFinalizado: {},
}

func IsValidStatus(status string) bool {
	_, ok := statusTransitions[status]
	return ok
}

func CanTransition(from, to string) bool {
	for _, s := range statusTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

type Order struct {
	DTO
	PublicCode         string         `gorm:"unique;size:20" json:"publicCode"` // PED-XXXXXXXX
	CompanyID          uint           `gorm:"index" json:"companyId"`
	CustomerID         *uint          `json:"customerId"`
	Customer           *Customer      `json:"customer,omitempty"`
	NeighborhoodID     *uint          `json:"neighborhoodId"`
	Neighborhood       *Neighborhood  `json:"neighborhood,omitempty"`
	PaymentMethodID    *uint          `json:"paymentMethodId"`
	PaymentMethod      *PaymentMethod `json:"paymentMethod,omitempty"`
	Status             string         `gorm:"index;default:pending" json:"status"`
	OrderNumber        int            `json:"orderNumber"` // sequencial por empresa
	TotalAmount        float64        `json:"totalAmount"` // soma dos itens, sem entrega
	DeliveryFee        float64        `json:"deliveryFee"`
	Notes              string         `json:"notes"`
	NeedsChange        bool           `json:"needsChange"`
	ChangeFor          *float64       `json:"changeFor"`
	CancellationReason *string        `json:"cancellationReason"` // preenchido somente quando cancelado
	PriorityLevel      *int           `json:"priorityLevel"`
	PriorityLabel      *string        `json:"priorityLabel"`
	Items              []OrderItem    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// OrderItem é imutável depois de criado; preço é snapshot do momento do pedido.
type OrderItem struct {
	DTO
	OrderID    uint     `gorm:"index" json:"orderId"`
	ProductID  uint     `json:"productId"`
	Product    *Product `json:"product,omitempty"`
	Quantity   int      `json:"quantity"`
	UnitPrice  float64  `json:"unitPrice"`
	TotalPrice float64  `json:"totalPrice"`
}

type OrderItemInput struct {
	ProductID uint `json:"productId" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,min=1"`
}

type CreateOrderInput struct {
	CustomerID      *uint            `json:"customerId"`
	NeighborhoodID  *uint            `json:"neighborhoodId"`
	PaymentMethodID *uint            `json:"paymentMethodId"`
	Items           []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	DeliveryFee     *float64         `json:"deliveryFee"` // sobrepõe a taxa do bairro
	Notes           string           `json:"notes"`
	NeedsChange     bool             `json:"needsChange"`
	ChangeFor       *float64         `json:"changeFor"`
}

type TransitionOrderInput struct {
	Status string  `json:"status" validate:"required"`
	Reason *string `json:"reason"`
}

type OrderFilter struct {
	Pagination
	Status     *string `query:"status"`
	CustomerID *uint   `query:"customerId"`
	DateStart  *string `query:"dateStart"` // 2006-01-02
	DateEnd    *string `query:"dateEnd"`
}

type KanbanMoveInput struct {
	OrderID uint    `json:"orderId" validate:"required"`
	Status  string  `json:"status" validate:"required"`
	Reason  *string `json:"reason"`
}

type OrderNotification struct {
	NomeCliente          string  `json:"nomeCliente"`
	Telefone             string  `json:"telefone"`
	DataPedido           string  `json:"dataPedido"`
	DescricaoPedido      string  `json:"descricaoPedido"`
	ValorTotal           float64 `json:"valorTotal"`
	ValorEntrega         float64 `json:"valorEntrega"`
	ValorTotalComEntrega float64 `json:"valorTotalComEntrega"`
	StatusPedido         string  `json:"statusPedido"`
	Observacoes          string  `json:"observacoes"`
	NumeroPedido         int     `json:"numeroPedido"`
	FormaPagamento       string  `json:"formaPagamento"`
	EnderecoEntrega      string  `json:"enderecoEntrega"`
	PrecisaTroco         bool    `json:"precisaTroco"`
	ValorTroco           float64 `json:"valorTroco"`
}

type KanbanColumn struct {
	Status string  `json:"status"`
	Orders []Order `json:"orders"`
}

type OrderTracking struct {
	PublicCode  string    `json:"publicCode"`
	OrderNumber int       `json:"orderNumber"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"totalAmount"`
	DeliveryFee float64   `json:"deliveryFee"`
	Items       []string  `json:"items"`
	CreatedAt   time.Time `json:"createdAt"`
	QRCode      string    `json:"qrCode"`
}
