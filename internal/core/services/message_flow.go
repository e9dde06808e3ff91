package services

import "github.com/staffbridge/workforce_backend/internal/core/domain"

// MessageFlowPolicy is the directed allow-table for user-initiated
// notifications: sender role to the set of roles they may message. Keeping the
// policy as data keeps it testable and out of handler conditionals.
type MessageFlowPolicy map[domain.Role][]domain.Role

// DefaultMessageFlow mirrors the organizational hierarchy: admins and HR reach
// everyone, managers reach up to admins and down to employees, employees reach
// only their managers. HR gets the same reach as ADMIN because HR drives leave
// and payroll decisions that any role may need to hear about.
var DefaultMessageFlow = MessageFlowPolicy{
	domain.RoleAdmin:    {domain.RoleAdmin, domain.RoleManager, domain.RoleEmployee, domain.RoleHR},
	domain.RoleHR:       {domain.RoleAdmin, domain.RoleManager, domain.RoleEmployee, domain.RoleHR},
	domain.RoleManager:  {domain.RoleAdmin, domain.RoleEmployee},
	domain.RoleEmployee: {domain.RoleManager},
}

// Allows reports whether sender may message recipient under the policy.
func (p MessageFlowPolicy) Allows(sender, recipient domain.Role) bool {
	for _, allowed := range p[sender] {
		if allowed == recipient {
			return true
		}
	}
	return false
}

// RecipientRoles returns the roles a sender may message.
func (p MessageFlowPolicy) RecipientRoles(sender domain.Role) []domain.Role {
	return p[sender]
}
