package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// ListManager shows a list of strings with an entry and button for adding
// new ones. It never removes items; the owner replaces the data with SetData.
type ListManager struct {
	list     *widget.List
	entry    *widget.Entry
	data     []string
	onAdd    func(string)
	onChange func(string)
}

// ListManagerConfig configures the list manager
type ListManagerConfig struct {
	Placeholder string       // Entry placeholder text
	AddLabel    string       // Caption of the add button
	OnAdd       func(string) // Called with the entry text when adding
	OnChange    func(string) // Called whenever the entry text changes
}

// NewListManager creates a new list manager component
func NewListManager(data []string, config ListManagerConfig) (*ListManager, *fyne.Container) {
	lm := &ListManager{
		data:     data,
		onAdd:    config.OnAdd,
		onChange: config.OnChange,
	}

	lm.list = widget.NewList(
		func() int {
			return len(lm.data)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("template")
		},
		func(i widget.ListItemID, o fyne.CanvasObject) {
			label := o.(*widget.Label)
			if i < len(lm.data) {
				label.SetText("• " + lm.data[i])
			}
		})

	lm.entry = widget.NewEntry()
	lm.entry.SetPlaceHolder(config.Placeholder)
	lm.entry.OnChanged = func(text string) {
		if lm.onChange != nil {
			lm.onChange(text)
		}
	}
	lm.entry.OnSubmitted = func(string) {
		lm.submit()
	}

	addLabel := config.AddLabel
	if addLabel == "" {
		addLabel = "Add"
	}
	addButton := widget.NewButtonWithIcon(addLabel, theme.ContentAddIcon(), func() {
		lm.submit()
	})

	addControls := container.NewBorder(nil, nil, nil, addButton, lm.entry)

	listScroll := container.NewScroll(lm.list)
	listScroll.SetMinSize(fyne.NewSize(0, 120))

	listWithBorder := container.NewBorder(
		widget.NewSeparator(),
		widget.NewSeparator(),
		nil,
		nil,
		listScroll,
	)

	listContainer := container.NewVBox(addControls, listWithBorder)

	return lm, listContainer
}

func (lm *ListManager) submit() {
	if lm.onAdd != nil {
		lm.onAdd(lm.entry.Text)
	}
}

// Refresh refreshes the list display
func (lm *ListManager) Refresh() {
	lm.list.Refresh()
}

// GetData returns the current data
func (lm *ListManager) GetData() []string {
	return lm.data
}

// SetData updates the data and refreshes
func (lm *ListManager) SetData(data []string) {
	lm.data = data
	lm.list.Refresh()
}

// EntryText returns the text typed in the add entry
func (lm *ListManager) EntryText() string {
	return lm.entry.Text
}

// SetEntryText replaces the add entry text without firing OnChange
func (lm *ListManager) SetEntryText(text string) {
	if lm.entry.Text == text {
		return
	}
	onChanged := lm.entry.OnChanged
	lm.entry.OnChanged = nil
	lm.entry.SetText(text)
	lm.entry.OnChanged = onChanged
}
