package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/meltforce/liftlog/internal/models"
	"github.com/meltforce/liftlog/internal/program"
	"github.com/meltforce/liftlog/internal/state"
)

// --- Tool definitions ---

var toolGetSession = mcp.NewTool("get_session",
	mcp.WithDescription("Get one session: warm-up, main-lift scheme with target loads from the 1RM profile, accessories, what has been logged and completion. Defaults to the selected session."),
	mcp.WithNumber("week", mcp.Description("Program week 1-10. Defaults to the selected week.")),
	mcp.WithNumber("day", mcp.Description("Day 1-4. Defaults to the selected day.")),
)

var toolGetWeek = mcp.NewTool("get_week",
	mcp.WithDescription("Get the four sessions of a program week and which squat variant it trains."),
	mcp.WithNumber("week", mcp.Required(), mcp.Description("Program week 1-10")),
)

var toolGetPosition = mcp.NewTool("get_position",
	mcp.WithDescription("Get the selected week and day and how far through the program calendar they are."),
)

var toolSetPosition = mcp.NewTool("set_position",
	mcp.WithDescription("Select a session. Weeks outside 1-10 are clamped; a day outside 1-4 resets to day 1."),
	mcp.WithNumber("week", mcp.Required(), mcp.Description("Program week 1-10")),
	mcp.WithNumber("day", mcp.Required(), mcp.Description("Day 1-4")),
)

var toolGetOneRM = mcp.NewTool("get_one_rm",
	mcp.WithDescription("Get the one-rep max (kg) for each lift."),
)

var toolLogMainSet = mcp.NewTool("log_main_set",
	mcp.WithDescription("Log the weight lifted for one set of a main-lift scheme row. Starts the rest timer."),
	mcp.WithNumber("week", mcp.Required(), mcp.Description("Program week 1-10")),
	mcp.WithNumber("day", mcp.Required(), mcp.Description("Day 1-4")),
	mcp.WithNumber("row", mcp.Required(), mcp.Description("0-based scheme row index")),
	mcp.WithNumber("set", mcp.Required(), mcp.Description("0-based set index within the row")),
	mcp.WithNumber("weight", mcp.Required(), mcp.Description("Weight in kg; 0 clears the set")),
	mcp.WithString("notes", mcp.Description("Replaces the row's notes")),
)

var toolLogAccessory = mcp.NewTool("log_accessory",
	mcp.WithDescription("Record weight, reps or completed sets for an accessory exercise. Omitted fields are left unchanged."),
	mcp.WithNumber("week", mcp.Required(), mcp.Description("Program week 1-10")),
	mcp.WithNumber("day", mcp.Required(), mcp.Description("Day 1-4")),
	mcp.WithNumber("index", mcp.Required(), mcp.Description("0-based accessory index")),
	mcp.WithNumber("weight", mcp.Description("Weight in kg")),
	mcp.WithString("reps", mcp.Description("Reps performed, e.g. '10' or '8+8'")),
	mcp.WithNumber("sets_completed", mcp.Description("Number of sets completed")),
)

var toolGetProgramProgress = mcp.NewTool("get_program_progress",
	mcp.WithDescription("Completion of the selected session, each week and the whole program, counted in logged sets."),
)

var toolEstimateLoad = mcp.NewTool("estimate_load",
	mcp.WithDescription("Estimate a target load from a percentage of a 1RM, rounded to 2.5 kg."),
	mcp.WithString("lift", mcp.Required(), mcp.Description("Lift whose 1RM to use"),
		mcp.Enum(string(program.Snatch), string(program.CleanJerk), string(program.Deadlift),
			string(program.BenchPress), string(program.BackSquat), string(program.FrontSquat))),
	mcp.WithNumber("percent", mcp.Required(), mcp.Description("Percentage of 1RM, e.g. 75")),
	mcp.WithNumber("one_rm", mcp.Description("1RM in kg. Defaults to the stored profile value.")),
)

// --- Tool handlers ---

func (h *handlers) getSession(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pos, err := h.ds.Position(ctx)
	if err != nil {
		h.log.Error("mcp get_session position", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	week := req.GetInt("week", pos.Week)
	day := req.GetInt("day", pos.Day)

	view, err := h.ds.SessionView(ctx, week, day)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(view)
}

func (h *handlers) getWeek(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	week, err := req.RequireInt("week")
	if err != nil {
		return mcp.NewToolResultError("week parameter is required"), nil
	}
	wk, err := h.ds.Week(ctx, week)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(wk)
}

func (h *handlers) getPosition(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pos, err := h.ds.Position(ctx)
	if err != nil {
		h.log.Error("mcp get_position", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return jsonResult(pos)
}

func (h *handlers) setPosition(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	week, err := req.RequireInt("week")
	if err != nil {
		return mcp.NewToolResultError("week parameter is required"), nil
	}
	day, err := req.RequireInt("day")
	if err != nil {
		return mcp.NewToolResultError("day parameter is required"), nil
	}
	pos, err := h.ds.SetPosition(ctx, week, day, models.TabWorkout)
	if err != nil {
		h.log.Error("mcp set_position", "error", err)
		return mcp.NewToolResultError("update failed: " + err.Error()), nil
	}
	return jsonResult(pos)
}

func (h *handlers) getOneRM(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rm, err := h.ds.OneRM(ctx)
	if err != nil {
		h.log.Error("mcp get_one_rm", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return jsonResult(rm)
}

func (h *handlers) logMainSet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var ints [4]int
	for i, name := range []string{"week", "day", "row", "set"} {
		v, err := req.RequireInt(name)
		if err != nil {
			return mcp.NewToolResultError(name + " parameter is required"), nil
		}
		ints[i] = v
	}
	weight, err := req.RequireFloat("weight")
	if err != nil {
		return mcp.NewToolResultError("weight parameter is required"), nil
	}

	patch := state.MainRowPatch{Set: &ints[3], Weight: &weight}
	if has(req, "notes") {
		notes := req.GetString("notes", "")
		patch.Notes = &notes
	}
	view, err := h.ds.PatchMainRow(ctx, ints[0], ints[1], ints[2], patch)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(view)
}

func (h *handlers) logAccessory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var ints [3]int
	for i, name := range []string{"week", "day", "index"} {
		v, err := req.RequireInt(name)
		if err != nil {
			return mcp.NewToolResultError(name + " parameter is required"), nil
		}
		ints[i] = v
	}

	var patch state.AccessoryPatch
	if has(req, "weight") {
		w := req.GetFloat("weight", 0)
		patch.Weight = &w
	}
	if has(req, "reps") {
		r := program.ParseReps(req.GetString("reps", ""))
		patch.Reps = &r
	}
	if has(req, "sets_completed") {
		n := req.GetInt("sets_completed", 0)
		patch.SetsCompleted = &n
	}
	view, err := h.ds.PatchAccessory(ctx, ints[0], ints[1], ints[2], patch)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(view)
}

func (h *handlers) getProgramProgress(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	r, err := h.ds.Report(ctx)
	if err != nil {
		h.log.Error("mcp get_program_progress", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return jsonResult(r)
}

func (h *handlers) estimateLoad(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("lift")
	if err != nil {
		return mcp.NewToolResultError("lift parameter is required"), nil
	}
	lift, err := program.ParseLift(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	percent, err := req.RequireFloat("percent")
	if err != nil {
		return mcp.NewToolResultError("percent parameter is required"), nil
	}

	oneRM := req.GetFloat("one_rm", 0)
	if !has(req, "one_rm") {
		rm, err := h.ds.OneRM(ctx)
		if err != nil {
			h.log.Error("mcp estimate_load", "error", err)
			return mcp.NewToolResultError("query failed: " + err.Error()), nil
		}
		oneRM = rm.Get(lift)
	}

	return jsonResult(map[string]any{
		"lift":    lift,
		"oneRM":   oneRM,
		"percent": percent,
		"load":    program.EstimateLoad(oneRM, &percent, program.DefaultRoundStep),
	})
}

func has(req mcp.CallToolRequest, key string) bool {
	_, ok := req.GetArguments()[key]
	return ok
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(v)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
