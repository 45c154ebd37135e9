package display

const banner = `
 ███████╗██╗   ██╗███╗   ███╗    ██╗    ██╗ █████╗ ██╗     ██╗     ███████╗████████╗
 ██╔════╝██║   ██║████╗ ████║    ██║    ██║██╔══██╗██║     ██║     ██╔════╝╚══██╔══╝
 █████╗  ██║   ██║██╔████╔██║    ██║ █╗ ██║███████║██║     ██║     █████╗     ██║
 ██╔══╝  ╚██╗ ██╔╝██║╚██╔╝██║    ██║███╗██║██╔══██║██║     ██║     ██╔══╝     ██║
 ███████╗ ╚████╔╝ ██║ ╚═╝ ██║    ╚███╔███╔╝██║  ██║███████╗███████╗███████╗   ██║
 ╚══════╝  ╚═══╝  ╚═╝     ╚═╝     ╚══╝╚══╝ ╚═╝  ╚═╝╚══════╝╚══════╝╚══════╝   ╚═╝
                      EVM wallet generator: address, keys, mnemonic
`
