package backend

// Endpoints is the single source of truth mapping resource names to backend
// paths. Every path starts with exactly one slash and carries no trailing
// slash, so Client.url stays a pure concatenation.
var Endpoints = struct {
	Health string
	Root   string

	Companies     string
	Clients       string
	Users         string
	Suppliers     string
	Products      string
	Invoices      string
	InvoiceItems  string
	Purchases     string
	PurchaseItems string
	Expenses      string
	Leads         string
	WhatsappLogs  string
	UploadedDocs  string
	Settings      string

	SendMetaWhatsapp          string
	ScheduledWhatsappMessages string
	OCRUpload                 string

	Dashboard struct {
		Summary string
	}

	Tables struct {
		Settings string
	}

	Accounting struct {
		SalesSummary  string
		ExpenseReport string
		StockReport   string
	}

	Admin struct {
		Tenants       string
		Users         string
		Analytics     string
		WhatsappStats string
		Billing       string
	}
}{
	Health: "/health",
	Root:   "/",

	Companies:     "/api/companies",
	Clients:       "/api/clients",
	Users:         "/api/users",
	Suppliers:     "/api/suppliers",
	Products:      "/api/products",
	Invoices:      "/api/invoices",
	InvoiceItems:  "/api/invoice_items",
	Purchases:     "/api/purchases",
	PurchaseItems: "/api/purchase_items",
	Expenses:      "/api/expenses",
	Leads:         "/api/leads",
	WhatsappLogs:  "/api/whatsapp_logs",
	UploadedDocs:  "/api/uploaded_docs",
	Settings:      "/api/settings",

	SendMetaWhatsapp:          "/api/meta_whatsapp/send-meta-whatsapp",
	ScheduledWhatsappMessages: "/api/scheduled-whatsapp-messages",
	OCRUpload:                 "/api/ocr/upload",

	Dashboard: struct {
		Summary string
	}{
		Summary: "/dashboard/summary",
	},

	Tables: struct {
		Settings string
	}{
		Settings: "/tables/settings",
	},

	Accounting: struct {
		SalesSummary  string
		ExpenseReport string
		StockReport   string
	}{
		SalesSummary:  "/api/accounting/sales_summary",
		ExpenseReport: "/api/accounting/expense_report",
		StockReport:   "/api/accounting/stock_report",
	},

	Admin: struct {
		Tenants       string
		Users         string
		Analytics     string
		WhatsappStats string
		Billing       string
	}{
		Tenants:       "/api/admin/tenants",
		Users:         "/api/admin/users",
		Analytics:     "/api/admin/analytics",
		WhatsappStats: "/api/admin/whatsapp-stats",
		Billing:       "/api/admin/billing",
	},
}
