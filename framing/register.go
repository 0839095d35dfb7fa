package framing

func Register() {
	registerLine()
}
