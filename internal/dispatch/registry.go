package dispatch

// registerAll builds the static operation registry. Handlers live in the
// handlers_*.go files next to this one.
func (d *Dispatcher) registerAll() {
	for _, op := range []*Operation{
		// Scoring
		{Name: "score_account_health", Description: "Relationship health score for one account", Required: []string{"account"}, Handler: d.handleScoreHealth},
		{Name: "score_leads", Description: "Rank all accounts by lead score", Handler: d.handleScoreLeads},
		{Name: "forecast_account", Description: "Close-probability forecast for one account", Required: []string{"account"}, Handler: d.handleForecast},
		{Name: "account_health_report", Description: "Combined health, lead and forecast analysis", Required: []string{"account"}, Handler: d.handleHealthReport},
		{Name: "list_stale_accounts", Description: "Accounts with an active pipeline and no recent contact", Handler: d.handleListStale},

		// Scheduling
		{Name: "find_free_slots", Description: "Free meeting slots over a date range", Required: []string{"from", "to"}, Handler: d.handleFindSlots},
		{Name: "propose_meetings", Description: "Distribute meeting slots across target accounts with draft messages", Required: []string{"accounts", "from", "to"}, Handler: d.handleProposeMeetings},

		// Daily program
		{Name: "daily_program", Description: "Ranked daily work program", Handler: d.handleDailyProgram},

		// Account CRUD passthrough
		{Name: "create_account", Description: "Create an account", Required: []string{"name"}, Handler: d.handleCreateAccount},
		{Name: "update_account", Description: "Update account fields", Required: []string{"account"}, Handler: d.handleUpdateAccount},
		{Name: "advance_stage", Description: "Move an account to an explicit pipeline stage", Required: []string{"account", "stage"}, Handler: d.handleAdvanceStage},
		{Name: "mark_proposal_sent", Description: "Record that a proposal went out", Required: []string{"account"}, Handler: d.handleProposalSent},
		{Name: "mark_contract_signed", Description: "Record a signed contract", Required: []string{"account"}, Handler: d.handleContractSigned},
		{Name: "add_contact", Description: "Add a contact to an account", Required: []string{"account", "name"}, Handler: d.handleAddContact},
		{Name: "log_activity", Description: "Log an activity on an account", Required: []string{"account", "type", "title"}, Handler: d.handleLogActivity},
		{Name: "add_document", Description: "Attach a document to an account", Required: []string{"account", "name"}, Handler: d.handleAddDocument},
		{Name: "add_checklist_item", Description: "Add an onboarding checklist item", Required: []string{"account", "note"}, Handler: d.handleAddChecklistItem},
		{Name: "complete_checklist_item", Description: "Mark a checklist item done", Required: []string{"account", "item"}, Handler: d.handleCompleteChecklistItem},
		{Name: "list_accounts", Description: "List all accounts", Handler: d.handleListAccounts},
		{Name: "get_account", Description: "Fetch one account with its contacts and activities", Required: []string{"account"}, Handler: d.handleGetAccount},

		// Tasks and mentions
		{Name: "create_task", Description: "Create a task", Required: []string{"title"}, Handler: d.handleCreateTask},
		{Name: "update_task_status", Description: "Change a task's status", Required: []string{"task", "status"}, Handler: d.handleUpdateTaskStatus},
		{Name: "list_tasks", Description: "List tasks, optionally filtered", Handler: d.handleListTasks},
		{Name: "list_mentions", Description: "Mentions targeting the acting user", Handler: d.handleListMentions},
		{Name: "unread_summary", Description: "Unread notification and message counts", Handler: d.handleUnreadSummary},

		// Calendar and messaging passthrough
		{Name: "create_calendar_event", Description: "Create a calendar event", Required: []string{"title", "start", "end"}, Handler: d.handleCreateEvent},
		{Name: "list_calendar_events", Description: "Calendar events in a range", Required: []string{"from", "to"}, Handler: d.handleListEvents},
		{Name: "send_message", Description: "Send a message", Required: []string{"to", "subject", "body"}, Handler: d.handleSendMessage},
		{Name: "create_draft", Description: "Create a message draft", Required: []string{"to", "subject", "body"}, Handler: d.handleCreateDraft},
		{Name: "list_messages", Description: "List messages", Handler: d.handleListMessages},

		// Bulk load
		{Name: "import_book", Description: "Import accounts, tasks, mentions and events from a JSON file", Required: []string{"file"}, Handler: d.handleImportBook},
	} {
		d.register(op)
	}
}
