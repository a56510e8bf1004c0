package repository

import (
	"github.com/SRHSoulja/pengubook-backend/internal/domain/model"
)

// disposition classifies how the eraser treats rows of a dependent table.
type disposition int

const (
	// hardDelete removes rows outright: purely personal data.
	hardDelete disposition = iota
	// anonymize repoints targetField to the sentinel user, preserving content.
	anonymize
	// redact overwrites targetField with a fixed marker, preserving the row.
	redact
)

// matchArgs carries the identifiers a step may key on. Wallet is empty when
// the account has no connected wallet.
type matchArgs struct {
	UserID string
	Wallet string
}

// eraseStep describes one dependent table touched by account erasure. The
// ordered step list is the single source of truth for which tables the
// eraser and the data export walk; adding a dependent entity type means
// adding one entry here.
type eraseStep struct {
	Name        string
	Model       any
	Disposition disposition
	// TargetField is the column rewritten by anonymize/redact steps.
	TargetField string
	// Match returns the where clause selecting the user's rows. An empty
	// query skips the step for this user.
	Match func(m matchArgs) (string, []any)
}

func byUser(column string) func(matchArgs) (string, []any) {
	return func(m matchArgs) (string, []any) {
		return column + " = ?", []any{m.UserID}
	}
}

func byUserEither(first, second string) func(matchArgs) (string, []any) {
	return func(m matchArgs) (string, []any) {
		return first + " = ? OR " + second + " = ?", []any{m.UserID, m.UserID}
	}
}

func byWallet(column string) func(matchArgs) (string, []any) {
	return func(m matchArgs) (string, []any) {
		if m.Wallet == "" {
			return "", nil
		}
		return column + " = ?", []any{m.Wallet}
	}
}

// eraserSteps is ordered: every hard-delete runs before the sentinel upsert
// and the anonymize/redact group, and the profile/user rows are handled
// separately after all steps (parent rows go last).
var eraserSteps = []eraseStep{
	// Personal data: removed outright.
	{Name: "messages", Model: &model.Message{}, Disposition: hardDelete, Match: byUser("sender_id")},
	{Name: "message_reactions", Model: &model.MessageReaction{}, Disposition: hardDelete, Match: byUser("user_id")},
	{Name: "message_read_receipts", Model: &model.MessageReadReceipt{}, Disposition: hardDelete, Match: byUser("user_id")},
	{Name: "notifications", Model: &model.Notification{}, Disposition: hardDelete, Match: byUserEither("user_id", "actor_id")},
	{Name: "bookmarks", Model: &model.Bookmark{}, Disposition: hardDelete, Match: byUser("user_id")},
	{Name: "likes", Model: &model.Like{}, Disposition: hardDelete, Match: byUser("user_id")},
	{Name: "reactions", Model: &model.Reaction{}, Disposition: hardDelete, Match: byUser("user_id")},
	{Name: "shares", Model: &model.Share{}, Disposition: hardDelete, Match: byUser("user_id")},
	{Name: "follows", Model: &model.Follow{}, Disposition: hardDelete, Match: byUserEither("follower_id", "following_id")},
	{Name: "friendships", Model: &model.Friendship{}, Disposition: hardDelete, Match: byUserEither("user_id", "friend_id")},
	{Name: "blocks", Model: &model.Block{}, Disposition: hardDelete, Match: byUserEither("blocker_id", "blocked_id")},
	{Name: "activities", Model: &model.Activity{}, Disposition: hardDelete, Match: byUser("user_id")},
	{Name: "streaks", Model: &model.Streak{}, Disposition: hardDelete, Match: byUser("user_id")},
	{Name: "user_achievements", Model: &model.UserAchievement{}, Disposition: hardDelete, Match: byUser("user_id")},
	{Name: "community_memberships", Model: &model.CommunityMembership{}, Disposition: hardDelete, Match: byUser("user_id")},
	{Name: "moderator_grants", Model: &model.ModeratorGrant{}, Disposition: hardDelete, Match: byUser("user_id")},
	// Reports the user filed, plus reports aimed at the user account itself.
	// Reports targeting the user's posts or comments keep their subject
	// (anonymized, not deleted), so they stay.
	{Name: "reports", Model: &model.Report{}, Disposition: hardDelete, Match: func(m matchArgs) (string, []any) {
		return "reporter_id = ? OR (target_type = ? AND target_id = ?)", []any{m.UserID, model.ReportTargetUser, m.UserID}
	}},
	{Name: "muted_phrases", Model: &model.MutedPhrase{}, Disposition: hardDelete, Match: byUser("user_id")},
	{Name: "hidden_tokens", Model: &model.HiddenToken{}, Disposition: hardDelete, Match: byUser("user_id")},
	{Name: "ad_interactions", Model: &model.AdInteraction{}, Disposition: hardDelete, Match: byUser("user_id")},
	{Name: "advertisements", Model: &model.Advertisement{}, Disposition: hardDelete, Match: byUser("creator_id")},
	{Name: "uploads", Model: &model.Upload{}, Disposition: hardDelete, Match: byUser("user_id")},
	{Name: "contact_submissions", Model: &model.ContactSubmission{}, Disposition: hardDelete, Match: byUser("user_id")},
	{Name: "project_applications", Model: &model.ProjectApplication{}, Disposition: hardDelete, Match: byUser("user_id")},
	{Name: "auth_attempts", Model: &model.AuthAttempt{}, Disposition: hardDelete, Match: byWallet("wallet_address")},
	{Name: "auth_nonces", Model: &model.AuthNonce{}, Disposition: hardDelete, Match: byWallet("wallet_address")},
	{Name: "oauth_accounts", Model: &model.OAuthAccount{}, Disposition: hardDelete, Match: byUser("user_id")},
	{Name: "sessions", Model: &model.Session{}, Disposition: hardDelete, Match: byUser("user_id")},
	{Name: "revoked_sessions", Model: &model.RevokedSession{}, Disposition: hardDelete, Match: byUser("user_id")},
	{Name: "admin_actions", Model: &model.AdminAction{}, Disposition: hardDelete, Match: byUser("admin_id")},
	{Name: "csrf_tokens", Model: &model.CsrfToken{}, Disposition: hardDelete, Match: byUser("user_id")},

	// Community content: authorship repointed to the sentinel user.
	{Name: "posts", Model: &model.Post{}, Disposition: anonymize, TargetField: "author_id", Match: byUser("author_id")},
	{Name: "comments", Model: &model.Comment{}, Disposition: anonymize, TargetField: "author_id", Match: byUser("author_id")},
	{Name: "post_edits", Model: &model.PostEdit{}, Disposition: anonymize, TargetField: "edited_by", Match: byUser("edited_by")},
	{Name: "communities", Model: &model.Community{}, Disposition: anonymize, TargetField: "creator_id", Match: byUser("creator_id")},

	// Tips: the free-text message is redacted, the financial trail survives.
	{Name: "tips", Model: &model.Tip{}, Disposition: redact, TargetField: "message", Match: byUserEither("sender_id", "recipient_id")},
}
