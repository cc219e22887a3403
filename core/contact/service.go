package contact

import (
	"fmt"
	"net/mail"

	"github.com/google/uuid"

	"github.com/uyznfoundation/portal/core"
)

// Service relays validated contact and newsletter submissions to the
// foundation inbox. Nothing is persisted; the mail is the record.
type Service struct {
	inbox   mail.Address
	mailSvc core.EmailService
}

func NewService(conf *core.Config, mailSvc core.EmailService) *Service {
	return &Service{
		inbox:   conf.ContactEmail,
		mailSvc: mailSvc,
	}
}

func (svc *Service) Submit(msg Message) Receipt {
	ref := uuid.New().String()
	from := mail.Address{Name: msg.Name, Address: msg.Email}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{svc.inbox},
		ReplyTo: &from,
		Subject: fmt.Sprintf("Contact form [%s] from %s", ref, msg.Name),
		BodyStr: msg.Message,
	})
	return Receipt{Ref: ref}
}

func (svc *Service) Subscribe(sub Subscription) Receipt {
	ref := uuid.New().String()
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{svc.inbox},
		Subject: fmt.Sprintf("Newsletter signup [%s]", ref),
		BodyStr: sub.Email + " subscribed to the newsletter.",
	})
	return Receipt{Ref: ref}
}
