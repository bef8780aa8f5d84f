package tracker

// MapTicket transforms a wire ticket into a domain Ticket.
//
// Parsing is deliberately forgiving: a malformed timestamp degrades to
// its zero value instead of failing the snapshot, because one corrupted
// ticket must not blank the whole dashboard.
func MapTicket(item TicketDTO) Ticket {
	ticket := Ticket{
		ID:     item.ID,
		JobID:  item.JobID,
		Status: Status(item.Status),
		Assigned: AssignedInfo{
			Owner:       item.AssignedInfo.Owner,
			TeamMembers: item.AssignedInfo.TeamMembers,
			EmpName:     item.AssignedInfo.EmpName,
		},
		Meta: Meta{
			TeamEst:            item.Meta.TeamEst,
			RemainingSeconds:   item.Meta.RemainingSeconds,
			OriginalEstSeconds: item.Meta.OriginalEstSeconds,
			Timezone:           item.Meta.Timezone,
		},
	}

	if t, err := ParseTime(item.CreatedAt); err == nil {
		ticket.CreatedAt = t
	}
	if t, err := ParseTime(item.Meta.StartedAt); err == nil && item.Meta.StartedAt != "" {
		ticket.Meta.StartedAt = &t
	}
	if t, err := ParseTime(item.Meta.PausedAt); err == nil && item.Meta.PausedAt != "" {
		ticket.Meta.PausedAt = &t
	}
	if t, err := ParseTime(item.Meta.Deadline); err == nil && item.Meta.Deadline != "" {
		ticket.Meta.Deadline = &t
	}

	return ticket
}

// MapTickets maps a full wire response, dropping entries with no ID.
func MapTickets(resp *TicketListResponse) []Ticket {
	if resp == nil {
		return nil
	}
	tickets := make([]Ticket, 0, len(resp.Tickets))
	for _, item := range resp.Tickets {
		if item.ID == "" {
			continue
		}
		tickets = append(tickets, MapTicket(item))
	}
	return tickets
}

// MapTeamMembers maps the roster response, dropping nameless entries
// since the name is the only join key to ticket assignment.
func MapTeamMembers(resp *TeamMemberListResponse) []TeamMember {
	if resp == nil {
		return nil
	}
	members := make([]TeamMember, 0, len(resp.TeamMembers))
	for _, item := range resp.TeamMembers {
		if item.Name == "" {
			continue
		}
		members = append(members, TeamMember{
			Name:      item.Name,
			StartTime: item.StartTime,
		})
	}
	return members
}
