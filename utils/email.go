package utils

import (
	"bytes"
	"html/template"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// DailySummaryData dados para o email de fechamento do dia
type DailySummaryData struct {
	CompanyName  string
	Date         string
	OrderCount   int64
	TotalIncome  float64
	TotalExpense float64
	Balance      float64
}

var dailySummaryTmpl = template.Must(template.New("daily_summary").Parse(`
<h2>Fechamento do dia {{.Date}} - {{.CompanyName}}</h2>
<p>Pedidos finalizados: <b>{{.OrderCount}}</b></p>
<p>Receitas: <b>R$ {{printf "%.2f" .TotalIncome}}</b></p>
<p>Despesas: <b>R$ {{printf "%.2f" .TotalExpense}}</b></p>
<p>Saldo: <b>R$ {{printf "%.2f" .Balance}}</b></p>
`))

// SendDailySummaryEmail envia o resumo de caixa do dia (async)
func SendDailySummaryEmail(to string, data DailySummaryData) {
	go func() {
		var body bytes.Buffer
		if err := dailySummaryTmpl.Execute(&body, data); err != nil {
			log.Printf("erro ao montar email de fechamento: %v", err)
			return
		}

		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Fechamento do dia "+data.Date)
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("erro ao enviar email de fechamento para %s: %v", to, err)
		}
	}()
}
