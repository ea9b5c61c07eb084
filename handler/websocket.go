package handler

import (
	"acai_pdv/helper"
	"context"
	"strconv"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

var (
	boardClients = make(map[uint]map[*websocket.Conn]bool)
	boardMu      sync.Mutex
)

// BoardWebsocket mantém o painel assinado no canal do quadro da empresa:
// cada mutação de pedido publica o quadro atualizado via redis.
func BoardWebsocket(c *websocket.Conn) {
	companyIdStr := c.Params("companyId")
	id64, _ := strconv.ParseUint(companyIdStr, 10, 64)
	companyId := uint(id64)

	defer func() {
		boardMu.Lock()
		if boardClients[companyId] != nil {
			delete(boardClients[companyId], c)
		}
		boardMu.Unlock()
		c.Close()
	}()

	boardMu.Lock()
	if boardClients[companyId] == nil {
		boardClients[companyId] = make(map[*websocket.Conn]bool)
	}
	boardClients[companyId][c] = true
	boardMu.Unlock()

	// snapshot inicial do quadro
	if board, err := helper.BuildKanbanBoard(companyId); err == nil {
		c.WriteJSON(board)
	}

	pubsub := helper.RedisClient().Subscribe(
		context.Background(),
		helper.BoardChannel(companyId),
	)
	defer pubsub.Close()

	channel := pubsub.Channel()

	for msg := range channel {
		payload := []byte(msg.Payload)

		boardMu.Lock()
		for conn := range boardClients[companyId] {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(boardClients[companyId], conn)
			}
		}
		boardMu.Unlock()
	}
}
