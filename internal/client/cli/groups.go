package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/Sdizo-sdizo/i-Stokvel/internal/client/models"
)

// Groups lists the stokvel groups.
func (a *App) Groups(ctx context.Context) error {
	groups, err := a.groups.Groups(ctx)
	if err != nil {
		fmt.Println("Could not fetch groups:", err)
		return err
	}
	for _, g := range groups {
		fmt.Printf("%4d  %-20s  %-8s  R%.2f %s  %d/%d members\n",
			g.ID, g.Name, g.Tier, g.ContributionAmount, g.Frequency, g.MemberCount, g.MaxMembers)
	}
	return nil
}

// JoinGroup submits a join request for a category and tier, refusing to
// duplicate a request that is still pending.
func (a *App) JoinGroup(ctx context.Context) error {
	category, err := getSimpleText(a.reader, "Category (e.g. grocery, burial)", os.Stdout)
	if err != nil {
		return err
	}
	tier, err := getSimpleText(a.reader, "Tier (bronze/silver/gold)", os.Stdout)
	if err != nil {
		return err
	}
	amount, err := GetAmount(a.reader, "Monthly contribution", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}

	pending, err := a.groups.HasPendingRequest(ctx, category, tier, amount)
	if err != nil {
		fmt.Println("Could not check existing requests:", err)
		return err
	}
	if pending {
		fmt.Println("You already have a pending request for this tier")
		return nil
	}

	if err := a.groups.Join(ctx, category, tier, amount); err != nil {
		fmt.Println("Join request failed:", err)
		return err
	}
	fmt.Println("Join request submitted, waiting for approval")
	return nil
}

// Contribute makes a contribution to a group.
func (a *App) Contribute(ctx context.Context) error {
	groupID, err := GetID(a.reader, "Group id", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}
	amount, err := GetAmount(a.reader, "Amount", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}
	method, err := getSimpleText(a.reader, "Method (wallet/card)", os.Stdout)
	if err != nil {
		return err
	}
	var cardID int64
	if method == "card" {
		cardID, err = GetID(a.reader, "Card id", os.Stdout)
		if err != nil {
			fmt.Println(err)
			return err
		}
	}
	if err := a.groups.Contribute(ctx, groupID, amount, method, cardID); err != nil {
		fmt.Println("Contribution failed:", err)
		return err
	}
	fmt.Println("Contribution recorded")
	return nil
}

// MyRequests lists the member's own join requests.
func (a *App) MyRequests(ctx context.Context) error {
	requests, err := a.groups.MyJoinRequests(ctx)
	if err != nil {
		fmt.Println("Could not fetch join requests:", err)
		return err
	}
	printRequests(requests)
	return nil
}

// RequestQueue lists pending join requests for an admin.
func (a *App) RequestQueue(ctx context.Context) error {
	if !a.isAdmin(ctx) {
		fmt.Println("Admin access required")
		return nil
	}
	requests, err := a.groups.JoinRequests(ctx, models.RequestPending)
	if err != nil {
		fmt.Println("Could not fetch join requests:", err)
		return err
	}
	printRequests(requests)
	return nil
}

// ApproveRequest approves a pending join request.
func (a *App) ApproveRequest(ctx context.Context) error {
	if !a.isAdmin(ctx) {
		fmt.Println("Admin access required")
		return nil
	}
	id, err := GetID(a.reader, "Request id", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}
	if err := a.groups.Approve(ctx, id); err != nil {
		fmt.Println("Approval failed:", err)
		return err
	}
	fmt.Println("Request approved")
	return nil
}

// RejectRequest rejects a pending join request with a reason.
func (a *App) RejectRequest(ctx context.Context) error {
	if !a.isAdmin(ctx) {
		fmt.Println("Admin access required")
		return nil
	}
	id, err := GetID(a.reader, "Request id", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}
	reason, err := getSimpleText(a.reader, "Reason", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.groups.Reject(ctx, id, reason); err != nil {
		fmt.Println("Rejection failed:", err)
		return err
	}
	fmt.Println("Request rejected")
	return nil
}

// CreateGroup creates a new stokvel group.
func (a *App) CreateGroup(ctx context.Context) error {
	if !a.isAdmin(ctx) {
		fmt.Println("Admin access required")
		return nil
	}
	name, err := getSimpleText(a.reader, "Group name", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	tier, err := getSimpleText(a.reader, "Tier", os.Stdout)
	if err != nil {
		return err
	}
	amount, err := GetAmount(a.reader, "Contribution amount", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}
	frequency, err := getSimpleText(a.reader, "Frequency (weekly/monthly)", os.Stdout)
	if err != nil {
		return err
	}
	maxMembers, err := GetID(a.reader, "Max members", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}

	created, err := a.groups.Create(ctx, models.Group{
		Name:               name,
		Description:        description,
		Tier:               tier,
		ContributionAmount: amount,
		Frequency:          frequency,
		MaxMembers:         int(maxMembers),
	})
	if err != nil {
		fmt.Println("Could not create group:", err)
		return err
	}
	fmt.Printf("Group %d created\n", created.ID)
	return nil
}

// DeleteGroup deletes a stokvel group by id.
func (a *App) DeleteGroup(ctx context.Context) error {
	if !a.isAdmin(ctx) {
		fmt.Println("Admin access required")
		return nil
	}
	id, err := GetID(a.reader, "Group id", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}
	if err := a.groups.Delete(ctx, id); err != nil {
		fmt.Println("Could not delete group:", err)
		return err
	}
	fmt.Println("Group deleted")
	return nil
}

// GroupMembers lists the members of a group.
func (a *App) GroupMembers(ctx context.Context) error {
	if !a.isAdmin(ctx) {
		fmt.Println("Admin access required")
		return nil
	}
	id, err := GetID(a.reader, "Group id", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}
	members, err := a.groups.Members(ctx, id)
	if err != nil {
		fmt.Println("Could not fetch members:", err)
		return err
	}
	for _, m := range members {
		fmt.Printf("%4d  %-20s  %s  joined %s\n", m.ID, m.Name, m.Email, m.JoinedAt)
	}
	return nil
}

// Users lists platform users with optional search and status filters.
func (a *App) Users(ctx context.Context) error {
	if !a.isAdmin(ctx) {
		fmt.Println("Admin access required")
		return nil
	}
	query, err := getSimpleText(a.reader, "Search (empty for all)", os.Stdout)
	if err != nil {
		return err
	}
	status, err := getSimpleText(a.reader, "Status filter (all/active/suspended)", os.Stdout)
	if err != nil {
		return err
	}
	users, err := a.adminUsers.Users(ctx, query, status)
	if err != nil {
		fmt.Println("Could not fetch users:", err)
		return err
	}
	for _, u := range users {
		fmt.Printf("%4d  %-24s  %-28s  %s\n", u.ID, u.FullName, u.Email, u.Status)
	}
	return nil
}

func printRequests(requests []models.JoinRequest) {
	for _, r := range requests {
		line := fmt.Sprintf("%4d  %-10s %-8s  R%.2f  %-9s", r.ID, r.Category, r.Tier, r.Amount, r.Status)
		if r.User != "" {
			line += "  " + r.User
		}
		if r.Reason != "" {
			line += "  (" + r.Reason + ")"
		}
		fmt.Println(line)
	}
}
