package services

import (
	"fmt"
	"time"

	"github.com/cliento-portal/lib/invoice"
	"github.com/cliento-portal/models"
	"github.com/cliento-portal/utils"
)

// VATRate is the Dutch VAT applied on invoices.
const VATRate = 0.21

// InvoiceRenderer turns a fully resolved invoice into document bytes.
type InvoiceRenderer interface {
	Render(data invoice.Data) ([]byte, error)
}

// InvoiceService resolves both invoice parties and hands the result to the
// renderer. It refuses to render until the billing data is complete.
type InvoiceService struct {
	projects ProjectStore
	accounts AccountStore
	renderer InvoiceRenderer
	now      func() time.Time
}

// NewInvoiceService creates a new invoice service instance
func NewInvoiceService(projects ProjectStore, accounts AccountStore, renderer InvoiceRenderer) *InvoiceService {
	return &InvoiceService{
		projects: projects,
		accounts: accounts,
		renderer: renderer,
		now:      time.Now,
	}
}

// Generate renders the invoice for a project: the calling developer is the
// issuing party, the linked client the receiving one. Returns the document
// bytes and a suggested filename.
func (s *InvoiceService) Generate(caller models.Account, projectID string) ([]byte, string, error) {
	project, err := s.projects.FindByID(projectID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, "", ErrNotFound
		}
		return nil, "", storeFailure(err)
	}
	if caller.Role != models.RoleDeveloper || !CanReadProject(caller, project) {
		return nil, "", forbiddenf("only a developer on this project can generate its invoice")
	}

	if project.ClientID == nil {
		return nil, "", validationf("missing billing data: project has no client")
	}
	client, err := s.accounts.FindByID(*project.ClientID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, "", validationf("missing billing data: client account not found")
		}
		return nil, "", storeFailure(err)
	}

	if !caller.HasBillingData() || !client.HasBillingData() {
		return nil, "", validationf("missing billing data")
	}
	if project.Budget == nil {
		return nil, "", validationf("missing billing data: project has no budget")
	}

	now := s.now()
	amount := *project.Budget
	data := invoice.Data{
		Number:      fmt.Sprintf("INV-%d-%s", now.Year(), utils.GenerateShortID()),
		Date:        now,
		DueDate:     now.Add(30 * 24 * time.Hour),
		ProjectName: project.Name,
		Status:      string(project.Status),
		Deadline:    project.Deadline,
		CreatedAt:   project.CreatedAt,
		Developer:   partyFromAccount(caller),
		Client:      partyFromAccount(client),
		Amount:      amount,
		VAT:         amount * VATRate,
		Total:       amount * (1 + VATRate),
	}

	doc, err := s.renderer.Render(data)
	if err != nil {
		return nil, "", storeFailure(err)
	}
	filename := fmt.Sprintf("factuur-%s-%d.html", project.Name, now.Year())
	return doc, filename, nil
}

func partyFromAccount(a models.Account) invoice.Party {
	return invoice.Party{
		CompanyName: a.CompanyName,
		Username:    a.Username,
		Email:       a.Email,
		PhoneNumber: a.PhoneNumber,
		Address:     a.Address,
		PostalCode:  a.PostalCode,
		City:        a.City,
		Country:     a.Country,
		KVKNumber:   a.KVKNumber,
		BTWNumber:   a.BTWNumber,
	}
}
