package mailer

import (
	"context"
	"fmt"

	"github.com/desbravaprovas/clubcore/internal/email"
	"github.com/desbravaprovas/clubcore/internal/service"
)

const (
	TemplateMembershipRequest  = "membership_request"
	TemplateMembershipApproved = "membership_approved"
	TemplateMembershipRejected = "membership_rejected"
)

// Sender delivers a rendered template. *email.Service satisfies it.
type Sender interface {
	SendEmail(ctx context.Context, data email.EmailData) error
}

var _ service.Notifier = (*MembershipNotifier)(nil)

// MembershipTemplateData is the data every membership template receives.
type MembershipTemplateData struct {
	RecipientName string
	MemberName    string
	MemberEmail   string
	ClubName      string
	Role          string
	UnitName      string
	Office        string
	BaseURL       string
}

// MembershipNotifier sends the membership lifecycle emails.
type MembershipNotifier struct {
	sender  Sender
	baseURL string
}

func NewMembershipNotifier(sender Sender, baseURL string) *MembershipNotifier {
	return &MembershipNotifier{sender: sender, baseURL: baseURL}
}

// NotifyNewRequest tells the club admin a request is waiting.
func (n *MembershipNotifier) NotifyNewRequest(ctx context.Context, notice service.MembershipNotice) error {
	return n.send(ctx, notice, TemplateMembershipRequest,
		fmt.Sprintf("Nova solicitação de membro - %s", notice.ClubName))
}

// NotifyApproved welcomes the member to the club.
func (n *MembershipNotifier) NotifyApproved(ctx context.Context, notice service.MembershipNotice) error {
	return n.send(ctx, notice, TemplateMembershipApproved,
		fmt.Sprintf("Bem-vindo ao %s! - Desbrava Provas", notice.ClubName))
}

// NotifyRejected tells the requester the request was declined.
func (n *MembershipNotifier) NotifyRejected(ctx context.Context, notice service.MembershipNotice) error {
	return n.send(ctx, notice, TemplateMembershipRejected,
		fmt.Sprintf("Atualização sobre sua solicitação - %s", notice.ClubName))
}

func (n *MembershipNotifier) send(ctx context.Context, notice service.MembershipNotice, tmpl, subject string) error {
	if notice.RecipientEmail == "" {
		return fmt.Errorf("%s: notice has no recipient", tmpl)
	}

	return n.sender.SendEmail(ctx, email.EmailData{
		To:           notice.RecipientEmail,
		Subject:      subject,
		TemplateName: tmpl,
		TemplateData: MembershipTemplateData{
			RecipientName: notice.RecipientName,
			MemberName:    notice.MemberName,
			MemberEmail:   notice.MemberEmail,
			ClubName:      notice.ClubName,
			Role:          string(notice.Role),
			UnitName:      notice.UnitName,
			Office:        notice.Office,
			BaseURL:       n.baseURL,
		},
	})
}
