package i18n

// Flat per-language dictionaries. Lookup only: a missing key falls back to
// the key itself so the UI never renders an empty label.

const DefaultLang = "es"

var translations = map[string]map[string]string{
	"es": {
		"home":           "Inicio",
		"products":       "Productos",
		"cart":           "Carrito",
		"login":          "Iniciar Sesión",
		"register":       "Registrarse",
		"logout":         "Cerrar Sesión",
		"welcome":        "Bienvenido a TechStore",
		"addToCart":      "Añadir al Carrito",
		"price":          "Precio",
		"checkout":       "Pagar",
		"total":          "Total",
		"emptyCart":      "Tu carrito está vacío",
		"payment":        "Pago",
		"selectMethod":   "Selecciona método de pago",
		"transfermovil":  "Transfermóvil",
		"enzona":         "EnZona",
		"reference":      "Referencia de pago",
		"confirmPayment": "Confirmar Pago",
		"orders":         "Órdenes",
		"pending":        "Pendiente",
		"paid":           "Pagado",
		"shipped":        "Enviado",
		"adminPanel":     "Panel Admin",
		"desktop":        "Computadora de Escritorio",
		"laptop":         "Laptop",
		"phone":          "Teléfono",
		"accessory":      "Accesorio",
	},
	"en": {
		"home":           "Home",
		"products":       "Products",
		"cart":           "Cart",
		"login":          "Login",
		"register":       "Register",
		"logout":         "Logout",
		"welcome":        "Welcome to TechStore",
		"addToCart":      "Add to Cart",
		"price":          "Price",
		"checkout":       "Checkout",
		"total":          "Total",
		"emptyCart":      "Your cart is empty",
		"payment":        "Payment",
		"selectMethod":   "Select payment method",
		"transfermovil":  "Transfermóvil",
		"enzona":         "EnZona",
		"reference":      "Payment reference",
		"confirmPayment": "Confirm Payment",
		"orders":         "Orders",
		"pending":        "Pending",
		"paid":           "Paid",
		"shipped":        "Shipped",
		"adminPanel":     "Admin Panel",
		"desktop":        "Desktop",
		"laptop":         "Laptop",
		"phone":          "Phone",
		"accessory":      "Accessory",
	},
	"pt": {
		"home":           "Início",
		"products":       "Produtos",
		"cart":           "Carrinho",
		"login":          "Entrar",
		"register":       "Registrar",
		"logout":         "Sair",
		"welcome":        "Bem-vindo à TechStore",
		"addToCart":      "Adicionar ao Carrinho",
		"price":          "Preço",
		"checkout":       "Pagar",
		"total":          "Total",
		"emptyCart":      "Seu carrinho está vazio",
		"payment":        "Pagamento",
		"selectMethod":   "Selecione método de pagamento",
		"transfermovil":  "Transfermóvil",
		"enzona":         "EnZona",
		"reference":      "Referência de pagamento",
		"confirmPayment": "Confirmar Pagamento",
		"orders":         "Pedidos",
		"pending":        "Pendente",
		"paid":           "Pago",
		"shipped":        "Enviado",
		"adminPanel":     "Painel Admin",
		"desktop":        "Desktop",
		"laptop":         "Notebook",
		"phone":          "Telefone",
		"accessory":      "Acessório",
	},
	"fr": {
		"home":           "Accueil",
		"products":       "Produits",
		"cart":           "Panier",
		"login":          "Connexion",
		"register":       "S'inscrire",
		"logout":         "Déconnexion",
		"welcome":        "Bienvenue chez TechStore",
		"addToCart":      "Ajouter au Panier",
		"price":          "Prix",
		"checkout":       "Payer",
		"total":          "Total",
		"emptyCart":      "Votre panier est vide",
		"payment":        "Paiement",
		"selectMethod":   "Sélectionnez le mode de paiement",
		"transfermovil":  "Transfermóvil",
		"enzona":         "EnZona",
		"reference":      "Référence de paiement",
		"confirmPayment": "Confirmer le Paiement",
		"orders":         "Commandes",
		"pending":        "En attente",
		"paid":           "Payé",
		"shipped":        "Expédié",
		"adminPanel":     "Panneau Admin",
		"desktop":        "Ordinateur de bureau",
		"laptop":         "Portable",
		"phone":          "Téléphone",
		"accessory":      "Accessoire",
	},
	"de": {
		"home":           "Startseite",
		"products":       "Produkte",
		"cart":           "Warenkorb",
		"login":          "Anmelden",
		"register":       "Registrieren",
		"logout":         "Abmelden",
		"welcome":        "Willkommen bei TechStore",
		"addToCart":      "In den Warenkorb",
		"price":          "Preis",
		"checkout":       "Bezahlen",
		"total":          "Gesamt",
		"emptyCart":      "Ihr Warenkorb ist leer",
		"payment":        "Zahlung",
		"selectMethod":   "Zahlungsmethode wählen",
		"transfermovil":  "Transfermóvil",
		"enzona":         "EnZona",
		"reference":      "Zahlungsreferenz",
		"confirmPayment": "Zahlung bestätigen",
		"orders":         "Bestellungen",
		"pending":        "Ausstehend",
		"paid":           "Bezahlt",
		"shipped":        "Versandt",
		"adminPanel":     "Admin-Bereich",
		"desktop":        "Desktop",
		"laptop":         "Laptop",
		"phone":          "Handy",
		"accessory":      "Zubehör",
	},
}

func Supported(lang string) bool {
	_, ok := translations[lang]
	return ok
}

func T(lang, key string) string {
	table, ok := translations[lang]
	if !ok {
		table = translations[DefaultLang]
	}
	if v, ok := table[key]; ok {
		return v
	}
	return key
}

// Table returns the whole dictionary for one language so a client can fetch
// its strings in a single round trip.
func Table(lang string) map[string]string {
	table, ok := translations[lang]
	if !ok {
		table = translations[DefaultLang]
	}
	out := make(map[string]string, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out
}
