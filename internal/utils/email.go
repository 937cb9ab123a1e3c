package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/wneessen/go-mail"
)

func smtpClient() (*mail.Client, error) {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	return mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
}

func sendHTML(to, subject, htmlBody string) error {
	msg := mail.NewMsg()
	if err := msg.From(os.Getenv("SMTP_FROM")); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := smtpClient()
	if err != nil {
		return err
	}

	log.Println("📤 Enviando e-mail para", to)
	return client.DialAndSend(msg)
}

// SendInviteEmail avisa o convidado de que seu e-mail agora tem acesso
// administrativo.
func SendInviteEmail(to, role, invitedBy string) error {
	body := fmt.Sprintf(`
<!DOCTYPE html>
<html lang="pt-BR">
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Você foi convidado! 🎉</h2>
		<p>Olá,</p>
		<p>%s convidou você para ser <strong>%s</strong> no painel do Achadinhos Xpress.</p>
		<p>Crie sua conta com este e-mail para ativar o acesso.</p>
	</div>
</body>
</html>`, invitedBy, role)
	return sendHTML(to, "Convite para o painel Achadinhos Xpress", body)
}

// SendPasswordResetEmail envia o link de redefinição de senha.
func SendPasswordResetEmail(to, resetLink string) error {
	body := fmt.Sprintf(`
<!DOCTYPE html>
<html lang="pt-BR">
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Redefinição de senha</h2>
		<p>Olá,</p>
		<p>Recebemos um pedido para redefinir a sua senha. Clique no botão abaixo:</p>
		<p style="text-align: center; margin: 30px 0;">
			<a href="%s" style="background-color: #e91e63; color: white; padding: 12px 24px; border-radius: 6px; text-decoration: none;">Redefinir senha</a>
		</p>
		<p>Se você não pediu a redefinição, ignore este e-mail.</p>
	</div>
</body>
</html>`, resetLink)
	return sendHTML(to, "Redefinição de senha — Achadinhos Xpress", body)
}
