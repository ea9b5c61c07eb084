package constants

const (
	ROLE_ADMIN    = "ADMIN"
	ROLE_OPERATOR = "OPERATOR"
)

const (
	ERROR_INPUT                = "Dados de entrada inválidos"
	ERROR_INTERNAL_ERROR       = "Erro interno do servidor"
	ERROR_PARSE_DATA_TO_LOCALS = "Falha ao processar dados da requisição"
	DATA_INPUT_IS_NOT_NUMBER   = "O parâmetro informado não é um número"

	MISSING_LOGIN_INPUT   = "Informe usuário e senha"
	INVALID_USERNAME      = "Usuário não encontrado"
	INVALID_PASSWORD      = "Senha incorreta"
	ACCOUNT_NOT_ACTIVE    = "Conta desativada"
	NOT_ADMIN             = "Apenas administradores podem executar esta ação"
	CAN_NOT_HASH_PASSWORD = "Não foi possível processar a senha"

	ORDER_NOT_FOUND     = "Pedido não encontrado"
	ORDER_WRONG_COMPANY = "Pedido pertence a outra empresa"
	REASON_REQUIRED     = "Informe o motivo do cancelamento"
	INVALID_TRANSITION  = "Mudança de status não permitida"

	ENTRY_LOCKED = "Lançamento vinculado a pedido não pode ser alterado"
)
