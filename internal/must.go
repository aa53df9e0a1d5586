package internal

func Must0(err error) {
	if err != nil {
		panic(err)
	}
}
