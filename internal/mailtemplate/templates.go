// Package mailtemplate renders the notification emails sent by the form
// endpoints. Four documents exist: the owner-facing contact notice, the
// customer-facing contact acknowledgment, the owner-facing order notice and
// the owner-facing newsletter notice. All interpolated fields go through
// html/template's contextual escaping.
package mailtemplate

import (
	"fmt"
	"html/template"
	"strings"
	"time"
)

// ContactData feeds both contact templates.
type ContactData struct {
	Name    string
	Email   string
	Phone   string
	Message string
	Date    time.Time
}

// OrderData feeds the owner order notice.
type OrderData struct {
	ProductName   string
	UnitPrice     float64
	Quantity      int
	Total         float64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Message       string
	Date          time.Time
}

// NewsletterData feeds the owner newsletter notice.
type NewsletterData struct {
	Email string
	Name  string
	Date  time.Time
}

var funcs = template.FuncMap{
	"nl2br":     nl2br,
	"ariary":    FormatAriary,
	"dateLong":  FormatDateLong,
	"dateShort": FormatDateShort,
}

// Shared style block, lifted from the site's palette.
const baseStyle = `
        body { font-family: 'Lora', serif; line-height: 1.6; color: #2C1810; background-color: #FAF0E6; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: white; border-radius: 15px; overflow: hidden; box-shadow: 0 4px 16px rgba(107, 78, 61, 0.12); }
        .header { background: linear-gradient(135deg, #E8B4B4 0%, #D4A088 100%); padding: 30px; text-align: center; color: white; }
        .header h1 { margin: 0; font-size: 32px; }
        .content { padding: 30px; }
        .info-box { background: #F5E6D8; border-left: 4px solid #E8B4B4; padding: 15px; margin: 15px 0; border-radius: 5px; }
        .info-label { font-weight: bold; color: #6B4E3D; margin-bottom: 5px; }
        .message-box { background: #FAF0E6; padding: 20px; border-radius: 10px; margin: 20px 0; border: 1px solid #E8B4B4; }
        .footer { background: #6B4E3D; color: white; padding: 20px; text-align: center; font-size: 14px; }
        .footer a { color: #E8B4B4; text-decoration: none; }
`

const contactOwnerTmpl = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>` + baseStyle + `</style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🌿 Soa Bango</h1>
            <p style="margin: 10px 0 0 0;">Nouveau Message de Contact</p>
        </div>
        <div class="content">
            <p>Bonjour,</p>
            <p>Vous avez reçu un nouveau message depuis votre site web Soa Bango :</p>

            <div class="info-box">
                <div class="info-label">👤 Nom :</div>
                <div>{{.Name}}</div>
            </div>

            <div class="info-box">
                <div class="info-label">📧 Email :</div>
                <div><a href="mailto:{{.Email}}">{{.Email}}</a></div>
            </div>

            {{if .Phone}}
            <div class="info-box">
                <div class="info-label">📞 Téléphone :</div>
                <div><a href="tel:{{.Phone}}">{{.Phone}}</a></div>
            </div>
            {{end}}

            <div class="message-box">
                <div class="info-label">💬 Message :</div>
                <div>{{nl2br .Message}}</div>
            </div>

            <p style="margin-top: 30px;"><strong>Date de réception :</strong> {{dateLong .Date}}</p>
        </div>
        <div class="footer">
            <p>Ce message a été envoyé depuis le formulaire de contact de <a href="#">soabango.com</a></p>
            <p>© 2024 Soa Bango - Soins Naturels &amp; Cosmétiques</p>
        </div>
    </div>
</body>
</html>`

const contactCustomerTmpl = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>` + baseStyle + `
        .highlight-box { background: linear-gradient(135deg, #F4D7D7 0%, #F5E6D8 100%); padding: 20px; border-radius: 10px; margin: 20px 0; text-align: center; }
        .contact-info { background: #FAF0E6; padding: 20px; border-radius: 10px; margin: 20px 0; }
        .contact-item { margin: 10px 0; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🌿 Soa Bango</h1>
            <p style="margin: 10px 0 0 0;">Beauté Naturelle - Authenticité Garantie</p>
        </div>
        <div class="content">
            <p>Bonjour <strong>{{.Name}}</strong>,</p>

            <div class="highlight-box">
                <h2 style="margin: 0 0 10px 0; color: #6B4E3D;">Merci pour votre message !</h2>
                <p style="margin: 0;">Nous avons bien reçu votre demande et nous vous répondrons dans les plus brefs délais.</p>
            </div>

            <p>Notre équipe examine attentivement chaque message et s'efforcera de vous répondre sous 24 à 48 heures.</p>

            <p>En attendant, n'hésitez pas à découvrir notre gamme complète de produits naturels et nos services de soins capillaires et du visage.</p>

            <div class="contact-info">
                <h3 style="color: #6B4E3D; margin-top: 0;">📞 Vous pouvez aussi nous contacter :</h3>
                <div class="contact-item"><strong>Téléphone :</strong> <a href="tel:+261386791294" style="color: #E8B4B4;">+261 38 67 912 94</a></div>
                <div class="contact-item"><strong>Email :</strong> <a href="mailto:{{.OwnerEmail}}" style="color: #E8B4B4;">{{.OwnerEmail}}</a></div>
                <div class="contact-item"><strong>Adresse :</strong> Antananarivo, Madagascar</div>
                <div class="contact-item"><strong>Horaires :</strong> Lun - Sam: 9h - 18h</div>
            </div>

            <p style="text-align: center; margin-top: 30px; color: #6B4E3D;"><strong>✨ Votre beauté naturelle, notre passion ✨</strong></p>
        </div>
        <div class="footer">
            <p><strong>Suivez-nous sur les réseaux sociaux</strong></p>
            <p><a href="#">Facebook</a> · <a href="#">Instagram</a> · <a href="#">WhatsApp</a></p>
            <p style="margin-top: 20px;">© 2024 Soa Bango - Tous droits réservés</p>
            <p>Fait avec 💚 à Madagascar</p>
        </div>
    </div>
</body>
</html>`

const orderOwnerTmpl = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>` + baseStyle + `
        .header { background: linear-gradient(135deg, #A5D6A7 0%, #8BC68A 100%); }
        .order-box { background: #F4D7D7; padding: 20px; border-radius: 10px; margin: 20px 0; border: 2px solid #E8B4B4; }
        .info-row { margin: 10px 0; padding: 10px; background: white; border-radius: 5px; }
        .label { font-weight: bold; color: #6B4E3D; }
        .total { font-size: 24px; font-weight: bold; color: #6B4E3D; text-align: center; margin: 20px 0; padding: 15px; background: #F5E6D8; border-radius: 10px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🛍️ Nouvelle Commande</h1>
        </div>
        <div class="content">
            <div class="order-box">
                <h2 style="margin-top: 0; color: #6B4E3D;">Détails de la commande</h2>
                <div class="info-row"><span class="label">Produit :</span> {{.ProductName}}</div>
                <div class="info-row"><span class="label">Prix unitaire :</span> {{ariary .UnitPrice}}</div>
                <div class="info-row"><span class="label">Quantité :</span> {{.Quantity}}</div>
            </div>

            <div class="total">Total : {{ariary .Total}}</div>

            <h3 style="color: #6B4E3D;">Informations Client</h3>
            <div class="info-row"><span class="label">Nom :</span> {{.CustomerName}}</div>
            <div class="info-row"><span class="label">Email :</span> <a href="mailto:{{.CustomerEmail}}">{{.CustomerEmail}}</a></div>
            <div class="info-row"><span class="label">Téléphone :</span> <a href="tel:{{.CustomerPhone}}">{{.CustomerPhone}}</a></div>

            {{if .Message}}
            <div class="info-row" style="margin-top: 20px;">
                <span class="label">Message :</span><br>
                {{nl2br .Message}}
            </div>
            {{end}}

            <p style="margin-top: 30px;"><strong>Date :</strong> {{dateShort .Date}}</p>
        </div>
    </div>
</body>
</html>`

const newsletterOwnerTmpl = `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body>
    <h2>Nouvelle inscription à la newsletter</h2>
    <p><strong>Email :</strong> {{.Email}}</p>
    {{if .Name}}<p><strong>Nom :</strong> {{.Name}}</p>{{end}}
    <p><strong>Date :</strong> {{dateShort .Date}}</p>
</body>
</html>`

var (
	contactOwner    = template.Must(template.New("contact_owner").Funcs(funcs).Parse(contactOwnerTmpl))
	contactCustomer = template.Must(template.New("contact_customer").Funcs(funcs).Parse(contactCustomerTmpl))
	orderOwner      = template.Must(template.New("order_owner").Funcs(funcs).Parse(orderOwnerTmpl))
	newsletterOwner = template.Must(template.New("newsletter_owner").Funcs(funcs).Parse(newsletterOwnerTmpl))
)

func render(t *template.Template, data any) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", t.Name(), err)
	}
	return b.String(), nil
}

// ContactOwner renders the owner-facing contact notice.
func ContactOwner(d ContactData) (subject, html string, err error) {
	html, err = render(contactOwner, d)
	return fmt.Sprintf("🌿 Nouveau message de %s - Soa Bango", d.Name), html, err
}

// ContactCustomer renders the customer-facing acknowledgment. ownerEmail is
// shown in the "how to reach us" block.
func ContactCustomer(d ContactData, ownerEmail string) (subject, html string, err error) {
	html, err = render(contactCustomer, struct {
		ContactData
		OwnerEmail string
	}{d, ownerEmail})
	return "🌿 Merci pour votre message - Soa Bango", html, err
}

// OrderOwner renders the owner-facing order notice.
func OrderOwner(d OrderData) (subject, html string, err error) {
	html, err = render(orderOwner, d)
	return fmt.Sprintf("🛍️ Nouvelle commande : %s", d.ProductName), html, err
}

// NewsletterOwner renders the owner-facing newsletter signup notice.
func NewsletterOwner(d NewsletterData) (subject, html string, err error) {
	html, err = render(newsletterOwner, d)
	return "📧 Nouvelle inscription Newsletter", html, err
}
