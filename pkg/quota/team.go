package quota

// TeamMemberCount returns the number of distinct people occupying team seats
// across an owner's sites: every membership email and every pending
// invitation email, unioned, minus the owner's own email.
//
// The union matters: one person can hold a membership on one site and a
// pending invitation on another, and must still count once. Row counts over
// the two sources would double-bill that person.
func TeamMemberCount(ownerEmail string, memberEmails, inviteEmails []string) int64 {
	seen := make(map[string]struct{}, len(memberEmails)+len(inviteEmails))
	for _, email := range memberEmails {
		seen[email] = struct{}{}
	}
	for _, email := range inviteEmails {
		seen[email] = struct{}{}
	}
	delete(seen, ownerEmail)
	return int64(len(seen))
}
